package compound

// Builtin returns the builtin compound action table.
func Builtin() []ActionDefinition {
	return []ActionDefinition{
		{
			ActionID:    "sign_form_with_payment",
			DisplayName: "Sign Form & Pay",
			Description: "Sign the permission form, pay the fee, and send a confirmation.",
			Steps:       []string{"sign_form", "make_payment", "send_confirmation_email"},
			EndBehavior: EndBehavior{
				Type: EmailComposer,
				Template: &EmailTemplate{
					SubjectPrefix: "Re: ",
					BodyTemplate:  "The form is signed and the {amount} payment has been sent.",
				},
			},
			RequiresResponse: true,
			IsPremium:        true,
		},
		{
			ActionID:    "sign_form_with_calendar",
			DisplayName: "Sign Form & Add Date",
			Description: "Sign the permission form, put the event on the calendar, and confirm.",
			Steps:       []string{"sign_form", "add_to_calendar", "send_confirmation_email"},
			EndBehavior: EndBehavior{
				Type: EmailComposer,
				Template: &EmailTemplate{
					SubjectPrefix: "Re: ",
					BodyTemplate:  "The form is signed and {eventDate} is on our calendar.",
				},
			},
			RequiresResponse: true,
		},
		{
			ActionID:    "sign_and_send",
			DisplayName: "Sign & Send Back",
			Description: "Sign the permission form and reply with the signed copy.",
			Steps:       []string{"sign_form", "send_confirmation_email"},
			EndBehavior: EndBehavior{
				Type: EmailComposer,
				Template: &EmailTemplate{
					SubjectPrefix: "Re: ",
					BodyTemplate:  "Signed form attached.",
				},
			},
			RequiresResponse: true,
		},
		{
			ActionID:    "pay_and_confirm",
			DisplayName: "Pay & Confirm",
			Description: "Pay the invoice and reply confirming the payment.",
			Steps:       []string{"make_payment", "send_confirmation_email"},
			EndBehavior: EndBehavior{
				Type: EmailComposer,
				Template: &EmailTemplate{
					SubjectPrefix: "Re: ",
					BodyTemplate:  "Payment of {amount} has been submitted.",
				},
			},
			RequiresResponse: true,
			IsPremium:        true,
		},
		{
			ActionID:         "rsvp_with_calendar",
			DisplayName:      "Accept & Add to Calendar",
			Description:      "Accept the invitation and create the calendar event.",
			Steps:            []string{"rsvp_yes", "add_to_calendar"},
			EndBehavior:      EndBehavior{Type: ReturnToApp},
			RequiresResponse: false,
		},
		{
			ActionID:         "track_and_remind",
			DisplayName:      "Track & Remind",
			Description:      "Open package tracking and set a delivery follow-up reminder.",
			Steps:            []string{"track_package", "create_reminder"},
			EndBehavior:      EndBehavior{Type: ReturnToApp},
			RequiresResponse: false,
		},
		{
			ActionID:         "checkin_and_wallet",
			DisplayName:      "Check In & Save Pass",
			Description:      "Check in for the flight, save the boarding pass, and add the departure to the calendar.",
			Steps:            []string{"check_in_flight", "add_boarding_pass_to_wallet", "add_flight_to_calendar"},
			EndBehavior:      EndBehavior{Type: ReturnToApp},
			RequiresResponse: false,
			IsPremium:        true,
		},
		{
			ActionID:         "unsubscribe_and_archive",
			DisplayName:      "Unsubscribe & Archive",
			Description:      "Unsubscribe from the sender and archive the email.",
			Steps:            []string{"unsubscribe", "archive_email"},
			EndBehavior:      EndBehavior{Type: ReturnToApp},
			RequiresResponse: false,
		},
		{
			ActionID:         "schedule_from_email",
			DisplayName:      "Schedule & Confirm",
			Description:      "Create the meeting event and reply confirming attendance.",
			Steps:            []string{"add_meeting_to_calendar", "send_confirmation_email"},
			EndBehavior:      EndBehavior{Type: ReturnToApp},
			RequiresResponse: false,
			IsPremium:        true,
		},
	}
}
