package httperr

var messages = map[string]string{
	"booking_not_found":       "Booking not found.",
	"consultant_not_found":    "Consultant not found.",
	"slot_not_found":          "Slot not found.",
	"slot_taken":              "This slot is already booked for that date.",
	"member_double_booked":    "You already have a booking on that date.",
	"member_over_limit":       "You already have the maximum number of active bookings.",
	"invalid_date":            "Invalid date, expected YYYY-MM-DD.",
	"invalid_time":            "Invalid time, expected HH:MM.",
	"invalid_time_range":      "Start time must be before end time.",
	"invalid_weekday":         "Weekday must be between 0 and 6.",
	"invalid_status":          "Unknown booking status.",
	"invalid_transition":      "Booking status cannot change that way.",
	"member_not_found":        "Member not found.",
	"user_not_found":          "User not found.",
	"user_already_consultant": "User is already a consultant.",
	"slot_already_assigned":   "Slot already assigned for that weekday.",
	"program_not_found":       "Program not found.",
	"invalid_title":           "Title is required.",
	"duplicate_title":         "A program with that title already exists.",
	"duplicate_email":         "Email already registered.",
	"survey_not_found":        "Survey not found.",
	"empty_question_text":     "Question text is required.",
	"unknown_question":        "Answer references an unknown question.",
	"missing_required_answer": "A required question was not answered.",
	"only_members":            "Only members can do this.",
	"not_consultant_owner":    "You can only change your own schedule.",
	"not_booking_owner":       "You can only change your own bookings.",
	"invalid_credentials":     "Invalid email or password.",
	"invalid_email_domain":    "The email domain does not look valid.",
	"user_inactive":           "This account is not active.",
	"invalid_token":           "Invalid or expired token.",
	"missing_token":           "Authorization header is missing.",
	"forbidden_role":          "You are not allowed to do this.",
	"invalid_request":         "Invalid request.",
	"invalid_id":              "Invalid id.",
	"invalid_image":           "The file is not a supported image.",
	"image_too_large":         "The image is too large.",
	"storage_disabled":        "File uploads are not configured.",
	"date_in_past":            "The date is in the past.",
	"rate_limited":            "Too many requests, try again later.",
	"lock_timeout":            "Too many concurrent requests for this slot, try again.",
	"operation_failed":        "The operation could not be completed.",
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}
