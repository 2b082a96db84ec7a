// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAdminAccessDenied      = "admin.access_denied"
	KeyAdminActionSuccess     = "admin.action_success"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Products
	KeyProductNotFound = "product.not_found"
	KeyProductApproved = "product.approved"
	KeyProductRejected = "product.rejected"
	KeyProductDeleted  = "product.deleted"

	// Categories
	KeyCategoryNotFound = "category.not_found"
	KeyCategoryCreated  = "category.created"
	KeyCategoryUpdated  = "category.updated"
	KeyCategoryDeleted  = "category.deleted"

	// Banners
	KeyBannerNotFound = "banner.not_found"
	KeyBannerCreated  = "banner.created"
	KeyBannerUpdated  = "banner.updated"
	KeyBannerDeleted  = "banner.deleted"

	// Reports
	KeyReportNotFound = "report.not_found"
	KeyReportResolved = "report.resolved"
	KeyReportRejected = "report.rejected"

	// Seller verification
	KeyVerificationNotFound = "verification.not_found"
	KeyVerificationApproved = "verification.approved"
	KeyVerificationRejected = "verification.rejected"

	// Users
	KeyUserNotFound  = "user.not_found"
	KeyUserSuspended = "user.suspended"

	// Starter packs
	KeyStarterPackCreated = "starter_pack.created"

	// Mutations
	KeyMutationInFlight = "mutation.in_flight"
	KeyMutationFailed   = "mutation.failed"

	// Upstream
	KeyUpstreamUnavailable = "upstream.unavailable"
)
