package handler

import "regexp"

var emailPattern = regexp.MustCompile(`^(?i)[a-z0-9.]{1,64}@[a-z0-9.]{1,64}$`)

// validateUsername returns a user-facing message, or "" when valid.
func validateUsername(username string) string {
	if len(username) < 3 {
		return "Username must be at least 3 characters long."
	}
	return ""
}

func validatePassword(password string) string {
	if len(password) < 5 {
		return "Password must be at least 5 characters long."
	}
	return ""
}

func validateEmail(email string) string {
	if !emailPattern.MatchString(email) {
		return "Please enter a valid email."
	}
	return ""
}

func validateConfirmPassword(password, confirm string) string {
	if msg := validatePassword(confirm); msg != "" {
		return msg
	}
	if password != confirm {
		return "Passwords do not match."
	}
	return ""
}

// fieldErrors collects per-field validation messages, dropping empty ones.
func fieldErrors(pairs ...string) map[string]string {
	errs := make(map[string]string)
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			errs[pairs[i]] = pairs[i+1]
		}
	}
	return errs
}
