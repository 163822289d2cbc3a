package catalog

// Builtin returns the builtin action table. The slice order is load-bearing:
// the rules engine uses declaration order as the tie-break between actions
// of equal priority.
func Builtin() []ActionDefinition {
	return []ActionDefinition{
		// e-commerce.shipping.notification
		{
			ActionID:         "track_package",
			DisplayName:      "Track Package",
			ActionType:       GoTo,
			Description:      "Open the carrier's tracking page for this shipment.",
			RequiredEntities: []string{"trackingNumber", "carrier"},
			ValidIntents:     []string{"e-commerce.shipping.notification"},
			Priority:         1,
			URLTemplate:      "https://www.google.com/search?q={trackingNumber}",
			Handler:          "ShippingService.trackPackage",
		},
		{
			ActionID:         "set_delivery_reminder",
			DisplayName:      "Remind Me on Delivery Day",
			ActionType:       InApp,
			Description:      "Create a reminder for the expected delivery date.",
			RequiredEntities: []string{"deliveryDate"},
			ValidIntents:     []string{"e-commerce.shipping.notification"},
			Priority:         2,
			Handler:          "ReminderService.createReminder",
		},
		{
			ActionID:         "view_order_status",
			DisplayName:      "View Order Status",
			ActionType:       GoTo,
			Description:      "Open the merchant's order status page.",
			RequiredEntities: []string{"orderNumber"},
			ValidIntents:     []string{"e-commerce.shipping.notification", "e-commerce.order.confirmation"},
			Priority:         2,
			URLTemplate:      "https://orders.{merchantDomain}/status/{orderNumber}",
			Handler:          "ShoppingService.viewOrder",
		},
		{
			ActionID:         "report_shipping_issue",
			DisplayName:      "Report an Issue",
			ActionType:       InApp,
			Description:      "Start a delivery problem report for this order.",
			RequiredEntities: []string{"orderNumber"},
			ValidIntents:     []string{"e-commerce.shipping.notification"},
			Priority:         4,
			Handler:          "ShoppingService.reportIssue",
		},

		// e-commerce.order.confirmation
		{
			ActionID:         "view_order",
			DisplayName:      "View Order",
			ActionType:       GoTo,
			Description:      "Open the full order confirmation page.",
			RequiredEntities: []string{"orderNumber"},
			ValidIntents:     []string{"e-commerce.order.confirmation"},
			Priority:         1,
			URLTemplate:      "https://orders.{merchantDomain}/{orderNumber}",
			Handler:          "ShoppingService.viewOrder",
		},
		{
			ActionID:         "add_delivery_to_calendar",
			DisplayName:      "Add Delivery to Calendar",
			ActionType:       InApp,
			Description:      "Put the estimated delivery date on the calendar.",
			RequiredEntities: []string{"deliveryDate"},
			ValidIntents:     []string{"e-commerce.order.confirmation"},
			Priority:         2,
			Handler:          "CalendarService.createEvent",
		},
		{
			ActionID:         "save_receipt",
			DisplayName:      "Save Receipt",
			ActionType:       InApp,
			Description:      "File the purchase amount into the receipts folder.",
			RequiredEntities: []string{"amount"},
			ValidIntents:     []string{"e-commerce.order.confirmation", "finance.payment.receipt"},
			Priority:         3,
			Handler:          "FinanceService.saveReceipt",
		},

		// e-commerce.order.return
		{
			ActionID:         "start_return",
			DisplayName:      "Start a Return",
			ActionType:       GoTo,
			Description:      "Open the merchant's return flow for this order.",
			RequiredEntities: []string{"orderNumber"},
			ValidIntents:     []string{"e-commerce.order.return"},
			Priority:         1,
			URLTemplate:      "https://returns.{merchantDomain}/{orderNumber}",
			Handler:          "ShoppingService.startReturn",
		},
		{
			ActionID:         "track_return",
			DisplayName:      "Track Return Shipment",
			ActionType:       GoTo,
			Description:      "Track the return package on its way back.",
			RequiredEntities: []string{"trackingNumber", "carrier"},
			ValidIntents:     []string{"e-commerce.order.return"},
			Priority:         2,
			URLTemplate:      "https://www.google.com/search?q={trackingNumber}",
			Handler:          "ShippingService.trackPackage",
		},

		// finance.invoice.due
		{
			ActionID:         "pay_invoice",
			DisplayName:      "Pay Invoice",
			ActionType:       GoTo,
			Description:      "Open the payment page for this invoice.",
			RequiredEntities: []string{"invoiceId", "amount"},
			ValidIntents:     []string{"finance.invoice.due"},
			Priority:         1,
			URLTemplate:      "https://pay.{billerDomain}/invoice/{invoiceId}",
			Handler:          "PaymentService.payInvoice",
		},
		{
			ActionID:         "view_invoice",
			DisplayName:      "View Invoice",
			ActionType:       GoTo,
			Description:      "Open the invoice document.",
			RequiredEntities: []string{"invoiceId"},
			ValidIntents:     []string{"finance.invoice.due"},
			Priority:         2,
			URLTemplate:      "https://billing.{billerDomain}/invoice/{invoiceId}",
			Handler:          "PaymentService.viewInvoice",
		},
		{
			ActionID:         "schedule_payment_reminder",
			DisplayName:      "Remind Me Before Due Date",
			ActionType:       InApp,
			Description:      "Create a reminder ahead of the payment due date.",
			RequiredEntities: []string{"dueDate"},
			ValidIntents:     []string{"finance.invoice.due"},
			Priority:         2,
			Handler:          "ReminderService.createReminder",
		},
		{
			ActionID:         "dispute_charge",
			DisplayName:      "Dispute This Charge",
			ActionType:       InApp,
			Description:      "Start a dispute for the invoiced amount.",
			RequiredEntities: []string{"invoiceId"},
			ValidIntents:     []string{"finance.invoice.due"},
			Priority:         4,
			Handler:          "PaymentService.disputeCharge",
		},
		{
			ActionID:         "make_payment",
			DisplayName:      "Make Payment",
			ActionType:       GoTo,
			Description:      "Pay the requested amount.",
			RequiredEntities: []string{"amount"},
			ValidIntents:     []string{"finance.invoice.due", "education.permission.form"},
			Priority:         1,
			URLTemplate:      "https://pay.{billerDomain}/amount/{amount}",
			Handler:          "PaymentService.makePayment",
		},

		// finance.payment.receipt
		{
			ActionID:         "view_payment_details",
			DisplayName:      "View Payment Details",
			ActionType:       GoTo,
			Description:      "Open the transaction record for this payment.",
			RequiredEntities: []string{"transactionId"},
			ValidIntents:     []string{"finance.payment.receipt"},
			Priority:         1,
			URLTemplate:      "https://billing.{billerDomain}/tx/{transactionId}",
			Handler:          "PaymentService.viewTransaction",
		},
		{
			ActionID:         "categorize_expense",
			DisplayName:      "Categorize Expense",
			ActionType:       InApp,
			Description:      "Tag the payment with a spending category.",
			RequiredEntities: []string{"merchant"},
			ValidIntents:     []string{"finance.payment.receipt"},
			Priority:         3,
			Handler:          "FinanceService.categorizeExpense",
		},

		// finance.subscription.renewal
		{
			ActionID:         "manage_subscription",
			DisplayName:      "Manage Subscription",
			ActionType:       GoTo,
			Description:      "Open the subscription management page.",
			RequiredEntities: []string{"serviceName"},
			ValidIntents:     []string{"finance.subscription.renewal"},
			Priority:         1,
			URLTemplate:      "https://account.{serviceDomain}/subscription",
			Handler:          "SubscriptionService.manage",
		},
		{
			ActionID:         "cancel_subscription",
			DisplayName:      "Cancel Subscription",
			ActionType:       GoTo,
			Description:      "Open the cancellation flow before the renewal hits.",
			RequiredEntities: []string{"serviceName"},
			ValidIntents:     []string{"finance.subscription.renewal"},
			Priority:         2,
			URLTemplate:      "https://account.{serviceDomain}/subscription/cancel",
			Handler:          "SubscriptionService.cancel",
			IsPremium:        true,
		},
		{
			ActionID:         "set_renewal_reminder",
			DisplayName:      "Remind Me Before Renewal",
			ActionType:       InApp,
			Description:      "Create a reminder ahead of the renewal date.",
			RequiredEntities: []string{"renewalDate"},
			ValidIntents:     []string{"finance.subscription.renewal"},
			Priority:         3,
			Handler:          "ReminderService.createReminder",
		},

		// travel.flight.confirmation
		{
			ActionID:         "check_in_flight",
			DisplayName:      "Check In",
			ActionType:       GoTo,
			Description:      "Open the airline's online check-in.",
			RequiredEntities: []string{"confirmationCode", "airline"},
			ValidIntents:     []string{"travel.flight.confirmation"},
			Priority:         1,
			URLTemplate:      "https://checkin.{airlineDomain}/{confirmationCode}",
			Handler:          "TravelService.checkIn",
		},
		{
			ActionID:         "add_flight_to_calendar",
			DisplayName:      "Add Flight to Calendar",
			ActionType:       InApp,
			Description:      "Put the departure on the calendar.",
			RequiredEntities: []string{"departureDate"},
			ValidIntents:     []string{"travel.flight.confirmation"},
			Priority:         2,
			Handler:          "CalendarService.createEvent",
		},
		{
			ActionID:         "add_boarding_pass_to_wallet",
			DisplayName:      "Add Boarding Pass to Wallet",
			ActionType:       InApp,
			Description:      "Save the boarding pass into the device wallet.",
			RequiredEntities: []string{"confirmationCode"},
			ValidIntents:     []string{"travel.flight.confirmation"},
			Priority:         2,
			Handler:          "WalletService.addPass",
			IsPremium:        true,
		},
		{
			ActionID:         "track_flight_status",
			DisplayName:      "Track Flight Status",
			ActionType:       GoTo,
			Description:      "Open live status for this flight.",
			RequiredEntities: []string{"flightNumber"},
			ValidIntents:     []string{"travel.flight.confirmation"},
			Priority:         3,
			URLTemplate:      "https://www.flightaware.com/live/flight/{flightNumber}",
			Handler:          "TravelService.flightStatus",
		},

		// travel.hotel.confirmation
		{
			ActionID:         "view_reservation",
			DisplayName:      "View Reservation",
			ActionType:       GoTo,
			Description:      "Open the hotel reservation details.",
			RequiredEntities: []string{"confirmationNumber"},
			ValidIntents:     []string{"travel.hotel.confirmation"},
			Priority:         1,
			URLTemplate:      "https://reservations.{hotelDomain}/{confirmationNumber}",
			Handler:          "TravelService.viewReservation",
		},
		{
			ActionID:         "add_stay_to_calendar",
			DisplayName:      "Add Stay to Calendar",
			ActionType:       InApp,
			Description:      "Block the stay dates on the calendar.",
			RequiredEntities: []string{"checkInDate"},
			ValidIntents:     []string{"travel.hotel.confirmation"},
			Priority:         2,
			Handler:          "CalendarService.createEvent",
		},
		{
			ActionID:         "get_directions",
			DisplayName:      "Get Directions",
			ActionType:       GoTo,
			Description:      "Open maps directions to the hotel.",
			RequiredEntities: []string{"hotelAddress"},
			ValidIntents:     []string{"travel.hotel.confirmation"},
			Priority:         3,
			URLTemplate:      "https://maps.google.com/?q={hotelAddress}",
			Handler:          "TravelService.directions",
		},

		// events.invitation
		{
			ActionID:         "rsvp_yes",
			DisplayName:      "Accept Invitation",
			ActionType:       InApp,
			Description:      "Accept the invitation and notify the organizer.",
			RequiredEntities: []string{"eventName"},
			ValidIntents:     []string{"events.invitation"},
			Priority:         1,
			Handler:          "MessagingService.rsvp",
		},
		{
			ActionID:         "rsvp_no",
			DisplayName:      "Decline Invitation",
			ActionType:       InApp,
			Description:      "Decline the invitation and notify the organizer.",
			RequiredEntities: []string{"eventName"},
			ValidIntents:     []string{"events.invitation"},
			Priority:         2,
			Handler:          "MessagingService.rsvp",
		},
		{
			ActionID:         "add_to_calendar",
			DisplayName:      "Add to Calendar",
			ActionType:       InApp,
			Description:      "Create a calendar event from the email.",
			RequiredEntities: []string{"eventDate"},
			ValidIntents:     []string{"events.invitation", "events.reminder", "education.permission.form"},
			Priority:         1,
			Handler:          "CalendarService.createEvent",
		},

		// events.reminder
		{
			ActionID:         "view_event_details",
			DisplayName:      "View Event Details",
			ActionType:       GoTo,
			Description:      "Open the event page.",
			RequiredEntities: []string{"eventUrl"},
			ValidIntents:     []string{"events.reminder"},
			Priority:         2,
			URLTemplate:      "{eventUrl}",
			Handler:          "CalendarService.viewEvent",
		},

		// education.permission.form
		{
			ActionID:         "sign_form",
			DisplayName:      "Sign Form",
			ActionType:       InApp,
			Description:      "Sign the attached permission form.",
			RequiredEntities: []string{},
			ValidIntents:     []string{"education.permission.form"},
			Priority:         1,
			Handler:          "DocumentService.signForm",
		},
		{
			ActionID:         "send_confirmation_email",
			DisplayName:      "Send Confirmation",
			ActionType:       InApp,
			Description:      "Reply with a prefilled confirmation email.",
			RequiredEntities: []string{},
			ValidIntents:     []string{"education.permission.form", "finance.invoice.due", "work.meeting.invite"},
			Priority:         2,
			Handler:          "MessagingService.sendEmail",
		},

		// newsletters.promotional
		{
			ActionID:         "unsubscribe",
			DisplayName:      "Unsubscribe",
			ActionType:       InApp,
			Description:      "Run one-click unsubscribe for this sender.",
			RequiredEntities: []string{},
			ValidIntents:     []string{"newsletters.promotional", "newsletters.digest"},
			Priority:         1,
			Handler:          "UnsubscribeService.oneClick",
		},
		{
			ActionID:         "view_offer",
			DisplayName:      "View Offer",
			ActionType:       GoTo,
			Description:      "Open the promoted offer.",
			RequiredEntities: []string{"offerUrl"},
			ValidIntents:     []string{"newsletters.promotional"},
			Priority:         2,
			URLTemplate:      "{offerUrl}",
			Handler:          "ShoppingService.viewOffer",
		},
		{
			ActionID:         "copy_promo_code",
			DisplayName:      "Copy Promo Code",
			ActionType:       InApp,
			Description:      "Copy the promo code to the clipboard.",
			RequiredEntities: []string{"promoCode"},
			ValidIntents:     []string{"newsletters.promotional"},
			Priority:         3,
			Handler:          "ShoppingService.copyPromoCode",
		},

		// work.meeting.invite
		{
			ActionID:         "join_meeting",
			DisplayName:      "Join Meeting",
			ActionType:       GoTo,
			Description:      "Open the meeting link.",
			RequiredEntities: []string{"meetingUrl"},
			ValidIntents:     []string{"work.meeting.invite", "work.meeting.reminder"},
			Priority:         1,
			URLTemplate:      "{meetingUrl}",
			Handler:          "MeetingService.join",
		},
		{
			ActionID:         "add_meeting_to_calendar",
			DisplayName:      "Add Meeting to Calendar",
			ActionType:       InApp,
			Description:      "Create a calendar event for the meeting.",
			RequiredEntities: []string{"meetingDate"},
			ValidIntents:     []string{"work.meeting.invite"},
			Priority:         2,
			Handler:          "CalendarService.createEvent",
		},
		{
			ActionID:         "propose_new_time",
			DisplayName:      "Propose New Time",
			ActionType:       InApp,
			Description:      "Reply proposing a different meeting time.",
			RequiredEntities: []string{"meetingDate"},
			ValidIntents:     []string{"work.meeting.invite"},
			Priority:         3,
			Handler:          "MessagingService.sendEmail",
		},

		// health.appointment.reminder
		{
			ActionID:         "confirm_appointment",
			DisplayName:      "Confirm Appointment",
			ActionType:       InApp,
			Description:      "Confirm attendance with the provider.",
			RequiredEntities: []string{"appointmentDate"},
			ValidIntents:     []string{"health.appointment.reminder"},
			Priority:         1,
			Handler:          "MessagingService.sendEmail",
		},
		{
			ActionID:         "add_appointment_to_calendar",
			DisplayName:      "Add Appointment to Calendar",
			ActionType:       InApp,
			Description:      "Put the appointment on the calendar.",
			RequiredEntities: []string{"appointmentDate"},
			ValidIntents:     []string{"health.appointment.reminder"},
			Priority:         2,
			Handler:          "CalendarService.createEvent",
		},
		{
			ActionID:         "reschedule_appointment",
			DisplayName:      "Reschedule",
			ActionType:       GoTo,
			Description:      "Open the provider's rescheduling page.",
			RequiredEntities: []string{"appointmentId"},
			ValidIntents:     []string{"health.appointment.reminder"},
			Priority:         3,
			URLTemplate:      "https://appointments.{providerDomain}/{appointmentId}",
			Handler:          "HealthService.reschedule",
		},

		// Generic actions: valid for any intent, priority >= 3 so they never
		// outrank intent-specific suggestions.
		{
			ActionID:         "create_reminder",
			DisplayName:      "Remind Me Later",
			ActionType:       InApp,
			Description:      "Create a follow-up reminder for this email.",
			RequiredEntities: []string{},
			ValidIntents:     []string{},
			Priority:         4,
			Handler:          "ReminderService.createReminder",
		},
		{
			ActionID:         "view_details",
			DisplayName:      "View Details",
			ActionType:       InApp,
			Description:      "Open the full email with extracted highlights.",
			RequiredEntities: []string{},
			ValidIntents:     []string{},
			Priority:         5,
			Handler:          "MailService.viewDetails",
		},
		{
			ActionID:         "save_contact",
			DisplayName:      "Save Sender to Contacts",
			ActionType:       InApp,
			Description:      "Add the sender to the address book.",
			RequiredEntities: []string{"senderEmail"},
			ValidIntents:     []string{},
			Priority:         5,
			Handler:          "ContactsService.saveContact",
		},
		{
			ActionID:         "archive_email",
			DisplayName:      "Archive",
			ActionType:       InApp,
			Description:      "Archive the email.",
			RequiredEntities: []string{},
			ValidIntents:     []string{},
			Priority:         6,
			Handler:          "MailService.archive",
		},
		{
			ActionID:         "mark_important",
			DisplayName:      "Mark as Important",
			ActionType:       InApp,
			Description:      "Flag the email as important.",
			RequiredEntities: []string{},
			ValidIntents:     []string{},
			Priority:         6,
			Handler:          "MailService.markImportant",
		},
	}
}
