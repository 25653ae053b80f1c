// Package message holds the canned strings returned to API clients.
package message

const (
	RequiredFields = "Please provide all required fields"
	InvalidInput   = "Invalid input."

	UserCreated  = "User created successfully"
	UserExists   = "User already exists"
	InvalidLogin = "Invalid email or password"
	SignedIn     = "You have been signed in successfully"
	SignedOut    = "You have been signed out successfully"
	Unauthorized = "You are not authorized to access this resource"
	UserFetched  = "User details fetched successfully"

	EmailVerified      = "Email verified successfully"
	InvalidVerifyToken = "Invalid or expired verification token"

	InvalidEmail      = "Invalid email"
	ResetEmailSent    = "Password reset email sent successfully"
	InvalidResetToken = "Invalid or expired reset token"
	PasswordReset     = "Password reset successfully"

	ContentsFetched = "Contents fetched successfully"
	ContentCreated  = "Content created successfully"
	ContentDeleted  = "Content deleted successfully"
	ProvideContent  = "Please provide content"

	ErrCreatingUser  = "Error creating user"
	ErrSigningIn     = "Error signing in"
	ErrVerifyingUser = "Error verifying email"
	ErrSendingReset  = "Error sending password reset email"
	ErrResetPassword = "Error resetting password"
	ErrFetchingUser  = "Error fetching user details"
	ErrFetchContents = "Error fetching contents"
	ErrSavingContent = "Error saving content"
	ErrDeleteContent = "Error deleting content"
)
