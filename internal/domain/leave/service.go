package leave

import "context"

// LeaveService defines business logic for the leave application workflow
type LeaveService interface {
	// Submit files a new application. Admin-submitted applications are
	// approved immediately; employee-submitted ones start Pending.
	Submit(ctx context.Context, req SubmitRequest, submittedByAdmin bool) (ApplicationResponse, error)

	// Approve moves a Pending application to Approved and notifies the
	// applicant.
	Approve(ctx context.Context, applicationID string) (ApplicationResponse, error)

	// Reject moves a Pending application to Rejected and notifies the
	// applicant.
	Reject(ctx context.Context, applicationID string) (ApplicationResponse, error)

	// List returns a page of applications; admins see all, employees only
	// their own.
	List(ctx context.Context, filter ListFilter) (ListApplicationsResponse, error)
}
