package tools

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bookhub/bookhub/internal/core"
	"github.com/bookhub/bookhub/internal/neobookings"
)

func orderTools() []*Tool {
	return []*Tool{
		{
			Name:        "order_search_rq",
			Description: "Search orders by hotel, date window and state filters",
			Path:        "/OrderSearchRQ",
			Category:    "orders",
			Required:    []string{"order_by", "order_type"},
			Schema: map[string]any{
				"hotel_ids":   strArrayProp("Hotel identifiers to filter by"),
				"order_ids":   strArrayProp("Order identifiers to filter by"),
				"date_from":   dateProp("Start of the date window"),
				"date_to":     dateProp("End of the date window"),
				"date_by":     enumProp("Date field the window filters on", "creationdate", "lastupdate", "arrivaldate", "departuredate", "stay"),
				"order_by":    enumProp("Field to sort results by", "id", "name", "price", "creationdate", "lastupdate", "arrivaldate", "departuredate"),
				"order_type":  enumProp("Sort direction", "asc", "desc"),
				"page":        intProp("Page number"),
				"num_results": intProp("Results per page"),
				"filters": objProp("Additional filtering options", map[string]any{
					"order_states":        strArrayProp("Order states to include: confirm, cancel, invalid"),
					"payment_states":      strArrayProp("Payment states to include: entire, partial, pending"),
					"payment_methods":     strArrayProp("Payment methods to include"),
					"reservation_modes":   strArrayProp("Reservation modes to include: room, package, product"),
					"channels":            strArrayProp("Sales channels to include"),
					"customers":           strArrayProp("Customer names or emails to match"),
					"reviewed":            boolProp("Only orders that were (or were not) reviewed"),
					"from_professional":   boolProp("Only orders placed by professionals"),
					"notification_status": strProp("Notification status to filter by"),
				}),
				"language": langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				dateFrom, dateTo, err := optionalDateWindow(a, "date_from", "date_to")
				if err != nil {
					return nil, err
				}
				if dateFrom != "" && dateTo != "" {
					from, _ := time.Parse("2006-01-02", dateFrom)
					to, _ := time.Parse("2006-01-02", dateTo)
					if to.Sub(from) > 730*24*time.Hour {
						return nil, invalidInput("Date range cannot exceed 2 years")
					}
				}
				p := map[string]any{
					"OrderBy":    a.StringOr("order_by", "creationdate"),
					"OrderType":  a.StringOr("order_type", "desc"),
					"Page":       a.IntOr("page", 1),
					"NumResults": a.IntOr("num_results", 10),
				}
				putList(p, "HotelId", cleanList(a.StringSlice("hotel_ids")))
				putList(p, "OrderId", cleanList(a.StringSlice("order_ids")))
				putStr(p, "DateFrom", dateFrom)
				putStr(p, "DateTo", dateTo)
				if dateFrom != "" || dateTo != "" {
					p["DateBy"] = a.StringOr("date_by", "creationdate")
				}
				putObj(p, "FilterBy", orderSearchFilter(a.Object("filters")))
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "OrderBasicDetail", "order")
			},
		},
		{
			Name:        "order_details_rq",
			Description: "Retrieve full reservation details for orders",
			Path:        "/OrderDetailsRQ",
			Category:    "orders",
			Schema: map[string]any{
				"order_ids":        strArrayProp("Order identifiers to get details for"),
				"order_ids_origin": strArrayProp("Origin system order identifiers to get details for"),
				"language":         langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				orderIDs, err := cleanIDList(a.StringSlice("order_ids"), "Order ID")
				if err != nil {
					return nil, err
				}
				originIDs, err := cleanIDList(a.StringSlice("order_ids_origin"), "Origin Order ID")
				if err != nil {
					return nil, err
				}
				if len(orderIDs) == 0 && len(originIDs) == 0 {
					return nil, invalidInput("At least one order ID or origin order ID is required")
				}
				p := map[string]any{}
				putList(p, "OrderId", orderIDs)
				putList(p, "OrderIdOrigin", originIDs)
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "OrderDetails", "order")
			},
		},
		{
			Name:        "order_cancel_rq",
			Description: "Cancel orders with a reason and optional email suppression",
			Path:        "/OrderCancelRQ",
			Category:    "orders",
			Required:    []string{"order_ids", "reason"},
			Schema: map[string]any{
				"order_ids":                      strArrayProp("Order identifiers to cancel"),
				"reason":                         strProp("Cancellation reason"),
				"avoid_send_client_email":        boolProp("Skip the cancellation email to the client"),
				"avoid_send_establishment_email": boolProp("Skip the cancellation email to the establishment"),
				"language":                       langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				ids, err := requiredOrderIDs(a)
				if err != nil {
					return nil, err
				}
				reason := strings.TrimSpace(a.String("reason"))
				if reason == "" {
					return nil, invalidInput("Cancellation reason is required")
				}
				if len(reason) > 500 {
					return nil, invalidInput("Cancellation reason must not exceed 500 characters")
				}
				sanitized := clean(reason)
				if sanitized == "" {
					return nil, invalidInput("Invalid cancellation reason after sanitization")
				}
				p := map[string]any{"OrderId": ids, "Reason": sanitized}
				putTrue(p, "AvoidSendClientEmail", a.Bool("avoid_send_client_email"))
				putTrue(p, "AvoidSendEstablishmentEmail", a.Bool("avoid_send_establishment_email"))
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "OrdersCancelled", "cancelled order")
			},
		},
		{
			Name:        "order_credit_card_rq",
			Description: "Retrieve credit card data stored for orders",
			Path:        "/OrderCreditCardRQ",
			Category:    "orders",
			Required:    []string{"order_ids"},
			Schema: map[string]any{
				"order_ids": strArrayProp("Order identifiers to get card data for"),
				"language":  langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				ids, err := requiredOrderIDs(a)
				if err != nil {
					return nil, err
				}
				return map[string]any{"OrderId": ids}, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "OrderCreditCard", "stored card")
			},
		},
		{
			Name:        "order_data_modify_rq",
			Description: "Modify customer, guest, billing and payment data on orders",
			Path:        "/OrderDataModifyRQ",
			Category:    "orders",
			Required:    []string{"order_ids"},
			Schema: map[string]any{
				"order_ids":                      strArrayProp("Order identifiers to modify"),
				"avoid_send_client_email":        boolProp("Skip the modification email to the client"),
				"avoid_send_establishment_email": boolProp("Skip the modification email to the establishment"),
				"payment_method": objProp("Payment method update", map[string]any{
					"credit_card": boolProp("Switch the order to credit card payment"),
					"card_details": objProp("Card data", map[string]any{
						"holder_name":  strProp("Card holder name"),
						"number":       strProp("Card number"),
						"code":         strProp("Card verification code"),
						"expire_month": intProp("Card expiry month"),
						"expire_year":  intProp("Card expiry year"),
					}),
				}),
				"reservation_language": enumProp("Language for guest communications", "es", "en", "fr", "de", "it", "pt"),
				"special_requests":     strProp("Special requests text"),
				"info_client":          strProp("Internal notes visible to the client"),
				"info_hotel":           strProp("Internal notes visible to the hotel"),
				"gift_data": objProp("Gift voucher update", map[string]any{
					"firstname":         strProp("Gift recipient first name"),
					"surname":           strProp("Gift recipient surname"),
					"email":             strProp("Gift recipient email"),
					"message":           strProp("Gift message"),
					"anonymous":         boolProp("Hide the buyer from the recipient"),
					"notification_date": dateProp("Date to notify the recipient"),
					"delete_gift":       boolProp("Remove the gift data from the order"),
				}),
				"billing_data": objProp("Billing data update", map[string]any{
					"name":           strProp("Fiscal name"),
					"cif":            strProp("Fiscal identifier"),
					"address":        strProp("Billing address"),
					"zip":            strProp("Billing postal code"),
					"city":           strProp("Billing city"),
					"country":        strProp("Billing country"),
					"delete_billing": boolProp("Remove the billing data from the order"),
				}),
				"customer_data": objProp("Customer data update", map[string]any{
					"firstname":        strProp("Customer first name"),
					"surname":          strProp("Customer surname"),
					"date_of_birthday": dateProp("Customer date of birth"),
					"passport":         strProp("Customer passport number"),
					"address":          strProp("Customer address"),
					"city":             strProp("Customer city"),
					"zip":              strProp("Customer postal code"),
					"country":          strProp("Customer country"),
					"state":            strProp("Customer state or province"),
					"phone":            strProp("Customer phone"),
					"fax":              strProp("Customer fax"),
					"mobile":           strProp("Customer mobile phone"),
					"email":            strProp("Customer email"),
					"arrival_time":     strProp("Expected arrival time"),
				}),
				"guest_data": arrayProp("Guest data updates", objItem(map[string]any{
					"id":                  strProp("Guest identifier"),
					"hotel_guest_rph":     intProp("Guest reference number within the room"),
					"reference_rph_value": intProp("Room reference the guest belongs to"),
					"firstname":           strProp("Guest first name"),
					"surname":             strProp("Guest surname"),
					"passport":            strProp("Guest passport number"),
					"email":               strProp("Guest email"),
					"date_of_birthday":    dateProp("Guest date of birth"),
				})),
				"external_system": objProp("External system reference", map[string]any{
					"code":    strProp("External system code"),
					"locator": strProp("External system locator"),
				}),
				"language": langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				ids, err := requiredOrderIDs(a)
				if err != nil {
					return nil, err
				}
				p := map[string]any{"OrderId": ids}
				putTrue(p, "AvoidSendClientEmail", a.Bool("avoid_send_client_email"))
				putTrue(p, "AvoidSendEstablishmentEmail", a.Bool("avoid_send_establishment_email"))
				if pm := a.Object("payment_method"); len(pm) > 0 {
					putObj(p, "PaymentMethod", modifyPaymentMethod(pm))
				}
				putStr(p, "Language", a.String("reservation_language"))
				putStr(p, "SpecialRequests", clean(a.String("special_requests")))
				putStr(p, "InfoClient", clean(a.String("info_client")))
				putStr(p, "InfoHotel", clean(a.String("info_hotel")))
				if gift := a.Object("gift_data"); len(gift) > 0 {
					formatted, err := modifyGiftData(gift)
					if err != nil {
						return nil, err
					}
					putObj(p, "GiftData", formatted)
				}
				if billing := a.Object("billing_data"); len(billing) > 0 {
					putObj(p, "BillingData", modifyBillingData(billing))
				}
				if customer := a.Object("customer_data"); len(customer) > 0 {
					formatted, err := modifyCustomerData(customer)
					if err != nil {
						return nil, err
					}
					putObj(p, "DataModifyCustomer", formatted)
				}
				guests, err := modifyGuestData(a.ObjectSlice("guest_data"))
				if err != nil {
					return nil, err
				}
				if len(guests) > 0 {
					p["DataModifyGuests"] = guests
				}
				if ext := a.Object("external_system"); len(ext) > 0 {
					ref := map[string]any{}
					putStr(ref, "Code", clean(str(ext, "code")))
					putStr(ref, "Locator", clean(str(ext, "locator")))
					putObj(p, "ExternalSystem", ref)
				}
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return "Order data modification submitted"
			},
		},
		{
			Name:        "order_event_read_rq",
			Description: "Read the event history recorded for orders",
			Path:        "/OrderEventReadRQ",
			Category:    "orders",
			Required:    []string{"order_ids"},
			Schema: map[string]any{
				"order_ids": strArrayProp("Order identifiers to read events for"),
				"language":  langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				ids, err := requiredOrderIDs(a)
				if err != nil {
					return nil, err
				}
				return map[string]any{"OrderId": ids}, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "ReservationEvent", "event")
			},
		},
		{
			Name:        "order_event_search_rq",
			Description: "Search orders by reservation events within hotels",
			Path:        "/OrderEventSearchRQ",
			Category:    "orders",
			Required:    []string{"hotel_ids", "event_types"},
			Schema: map[string]any{
				"hotel_ids":   strArrayProp("Hotel identifiers to search in"),
				"event_types": strArrayProp("Event types to search for, e.g. CONFIRM, PAYMENT_AUTO_OK, CANCEL_MANUAL"),
				"date_from":   dateProp("Start of the date window"),
				"date_to":     dateProp("End of the date window"),
				"date_type":   enumProp("Date field the window filters on", "dateEvent", "dateArrival", "dateDeparture", "dateCreation"),
				"language":    langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				hotelIDs, err := cleanIDList(a.StringSlice("hotel_ids"), "Hotel ID")
				if err != nil {
					return nil, err
				}
				if len(hotelIDs) == 0 {
					return nil, invalidInput("At least one hotel ID is required")
				}
				eventTypes, err := validEventTypes(a.StringSlice("event_types"))
				if err != nil {
					return nil, err
				}
				var dateFrom, dateTo string
				if v := a.String("date_from"); v != "" {
					if dateFrom, err = core.ParseDate("date_from", v); err != nil {
						return nil, err
					}
				}
				if v := a.String("date_to"); v != "" {
					if dateTo, err = core.ParseDate("date_to", v); err != nil {
						return nil, err
					}
				}
				if dateFrom != "" && dateTo != "" && dateFrom > dateTo {
					return nil, invalidInput("Date from must be before date to")
				}
				p := map[string]any{"HotelId": hotelIDs, "EventType": eventTypes}
				putStr(p, "DateFrom", dateFrom)
				putStr(p, "DateTo", dateTo)
				if v := a.StringOr("date_type", "dateEvent"); v != "dateEvent" {
					p["DateType"] = v
				}
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "ReservationIds", "matching order")
			},
		},
		{
			Name:        "order_event_notify_rq",
			Description: "Record a reservation event for an order",
			Path:        "/OrderEventNotifyRQ",
			Category:    "orders",
			Required:    []string{"order_id", "event_type", "event_date"},
			Schema: map[string]any{
				"order_id":   strProp("Order identifier"),
				"event_type": enumProp("Type of event that occurred", eventTypeNames...),
				"event_date": strProp("When the event happened (YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS)"),
				"event_info": strProp("Additional event context"),
				"language":   langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				orderID := strings.TrimSpace(a.String("order_id"))
				if orderID == "" {
					return nil, invalidInput("Order ID is required")
				}
				sanitized := clean(orderID)
				if sanitized == "" {
					return nil, invalidInput("Invalid order ID format")
				}
				eventType := strings.TrimSpace(a.String("event_type"))
				if eventType == "" {
					return nil, invalidInput("Event type is required")
				}
				eventDate := strings.TrimSpace(a.String("event_date"))
				if eventDate == "" {
					return nil, invalidInput("Event date is required")
				}
				formatted, err := core.ParseDateTime("event_date", eventDate)
				if err != nil {
					return nil, err
				}
				p := map[string]any{
					"OrderId":   sanitized,
					"EventType": eventType,
					"EventDate": formatted,
				}
				if info := clean(a.String("event_info")); info != "" {
					if len(info) > 1000 {
						return nil, invalidInput("Event info must not exceed 1000 characters")
					}
					p["EventInfo"] = info
				}
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return "Event notification recorded"
			},
		},
		{
			Name:        "order_notification_rq",
			Description: "Create pending notifications for orders",
			Path:        "/OrderNotificationRQ",
			Category:    "orders",
			Required:    []string{"order_ids"},
			Schema: map[string]any{
				"order_ids":          strArrayProp("Order identifiers to notify"),
				"destination_system": strProp("Destination system the notification targets"),
				"destination_user":   strProp("Destination user the notification targets"),
				"language":           langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				ids, err := requiredOrderIDs(a)
				if err != nil {
					return nil, err
				}
				system := strings.TrimSpace(a.String("destination_system"))
				if len(system) > 100 {
					return nil, invalidInput("Destination system must not exceed 100 characters")
				}
				user := strings.TrimSpace(a.String("destination_user"))
				if len(user) > 100 {
					return nil, invalidInput("Destination user must not exceed 100 characters")
				}
				p := map[string]any{"OrderId": ids}
				putStr(p, "DestinationSystem", clean(system))
				putStr(p, "DestinationUser", clean(user))
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return "Notifications created"
			},
		},
		{
			Name:        "order_notification_read_rq",
			Description: "Read pending notifications for orders",
			Path:        "/OrderNotificationReadRQ",
			Category:    "orders",
			Required:    []string{"order_ids"},
			Schema: map[string]any{
				"order_ids": strArrayProp("Order identifiers to read notifications for"),
				"language":  langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				ids, err := requiredOrderIDs(a)
				if err != nil {
					return nil, err
				}
				return map[string]any{"OrderId": ids}, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return countSummary(reply, "Notification", "notification")
			},
		},
		{
			Name:        "order_notification_remove_rq",
			Description: "Remove pending notifications for orders",
			Path:        "/OrderNotificationRemoveRQ",
			Category:    "orders",
			Required:    []string{"order_ids"},
			Schema: map[string]any{
				"order_ids":          strArrayProp("Order identifiers to remove notifications for"),
				"destination_system": strProp("Only remove notifications for this system"),
				"destination_user":   strProp("Only remove notifications for this user"),
				"language":           langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				ids, err := requiredOrderIDs(a)
				if err != nil {
					return nil, err
				}
				p := map[string]any{"OrderId": ids}
				putStr(p, "DestinationSystem", core.SanitizeString(a.String("destination_system"), 100))
				putStr(p, "DestinationUser", core.SanitizeString(a.String("destination_user"), 100))
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return "Notifications removed"
			},
		},
		{
			Name:        "order_payment_create_rq",
			Description: "Record a payment against an order",
			Path:        "/OrderPaymentCreateRQ",
			Category:    "orders",
			Required:    []string{"order_id", "payment_method", "amount", "currency", "description"},
			Schema: map[string]any{
				"order_id":       strProp("Order identifier"),
				"payment_method": enumProp("Payment method used", paymentMethodNames...),
				"amount":         numProp("Payment amount"),
				"currency":       strProp("3-letter ISO currency code"),
				"description":    strProp("Payment description"),
				"payment_date":   strProp("When the payment happened (ISO 8601), defaults to now"),
				"removed":        boolProp("Mark the payment as removed"),
				"tpv_token": objProp("TPV tokenization data", map[string]any{
					"tpv_system":       strProp("TPV system identifier"),
					"payer_token":      strProp("Payer token"),
					"operation_token":  strProp("Operation token"),
					"operation_schema": strProp("Operation schema"),
					"pan":              strProp("Masked card number"),
				}),
				"language": langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				orderID := strings.TrimSpace(a.String("order_id"))
				if orderID == "" {
					return nil, invalidInput("Order ID is required")
				}
				orderID = core.SanitizeString(orderID, 50)
				method := a.String("payment_method")
				if method == "" {
					return nil, invalidInput("Payment method is required")
				}
				amount := a.Float("amount")
				if amount < 0 {
					return nil, invalidInput("Amount must be a positive number")
				}
				if amount > 999999.99 {
					return nil, invalidInput("Amount exceeds maximum allowed value")
				}
				currency := strings.ToUpper(strings.TrimSpace(a.String("currency")))
				if len(currency) != 3 {
					return nil, invalidInput("Currency must be a valid 3-letter ISO code")
				}
				description := strings.TrimSpace(a.String("description"))
				if description == "" {
					return nil, invalidInput("Payment description is required")
				}
				paymentDate := strings.TrimSpace(a.String("payment_date"))
				if paymentDate != "" {
					if !validPaymentDate(paymentDate) {
						return nil, invalidInput("Invalid payment date format. Use YYYY-MM-DDTHH:MM:SS")
					}
				} else {
					paymentDate = time.Now().UTC().Format("2006-01-02T15:04:05Z")
				}
				p := map[string]any{
					"OrderId": orderID,
					"Payment": map[string]any{
						"DateCreated": paymentDate,
						"Method":      method,
						"Quantity":    math.Round(amount*100) / 100,
						"Currency":    currency,
						"Description": core.SanitizeString(description, 500),
						"Removed":     a.Bool("removed"),
					},
				}
				putObj(p, "TokenTpv", tpvToken(a.Object("tpv_token")))
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				return "Payment recorded"
			},
		},
		{
			Name:        "order_put_rq",
			Description: "Create or update an order from an external system",
			Path:        "/OrderPutRQ",
			Category:    "orders",
			Required:    []string{"order_id", "origin", "provider", "order_status"},
			Schema: map[string]any{
				"order_id": strProp("Order identifier in the external system"),
				"origin":   strProp("Booking origin identifier"),
				"provider": strProp("Provider the order comes from"),
				"order_status": objProp("Order status details", map[string]any{
					"order_state":    enumProp("Order state", "confirm", "cancel", "invalid"),
					"payment_state":  enumProp("Payment state", "entire", "partial", "pending"),
					"payment_method": enumProp("Payment method", paymentMethodNames...),
					"no_show":        boolProp("Guest did not show up"),
					"payment_type":   enumProp("Payment type", "full", "deposit"),
					"when_pay":       enumProp("When the payment is due", "now", "establishment", "scheduled"),
				}),
				"customer_data": objProp("Customer details", map[string]any{
					"title":            strProp("Customer title"),
					"firstname":        strProp("Customer first name"),
					"surname":          strProp("Customer surname"),
					"date_of_birthday": dateProp("Customer date of birth"),
					"address":          strProp("Customer address"),
					"zip":              strProp("Customer postal code"),
					"city":             strProp("Customer city"),
					"country":          strProp("Customer country"),
					"phone":            strProp("Customer phone"),
					"email":            strProp("Customer email"),
					"passport":         strProp("Customer passport number"),
					"state":            strProp("Customer state or province"),
				}),
				"amounts_data": objProp("Order amounts", map[string]any{
					"currency":           strProp("Currency code"),
					"amount_final":       numProp("Final amount"),
					"amount_total":       numProp("Total amount"),
					"amount_base":        numProp("Base amount"),
					"amount_taxes":       numProp("Tax amount"),
					"amount_tourist_tax": numProp("Tourist tax amount"),
				}),
				"billing_data": objProp("Billing details", map[string]any{
					"name":    strProp("Fiscal name"),
					"cif":     strProp("Fiscal identifier"),
					"address": strProp("Billing address"),
					"zip":     strProp("Billing postal code"),
					"city":    strProp("Billing city"),
					"country": strProp("Billing country"),
				}),
				"room_data": arrayProp("Rooms in the order", objItem(map[string]any{
					"arrival_date":   dateProp("Arrival date"),
					"departure_date": dateProp("Departure date"),
					"hotel_room_detail": objProp("Room identification", map[string]any{
						"hotel_id":               strProp("Hotel identifier"),
						"hotel_room_id":          strProp("Room identifier"),
						"hotel_room_name":        strProp("Room name"),
						"hotel_room_description": strProp("Room description"),
					}),
				})),
				"petitions":        strProp("Special petitions text"),
				"first_payment":    numProp("First payment amount"),
				"second_payment":   numProp("Second payment amount"),
				"issue_costs":      numProp("Issue costs amount"),
				"info_hotel":       strProp("Internal notes for the hotel"),
				"info_client":      strProp("Internal notes for the client"),
				"ignore_send_mail": boolProp("Skip confirmation emails"),
				"language":         langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				orderID := core.SanitizeString(strings.TrimSpace(a.String("order_id")), 50)
				if orderID == "" {
					return nil, invalidInput("Order ID is required")
				}
				origin := core.SanitizeString(strings.TrimSpace(a.String("origin")), 100)
				if origin == "" {
					return nil, invalidInput("Origin is required")
				}
				provider := core.SanitizeString(strings.TrimSpace(a.String("provider")), 100)
				if provider == "" {
					return nil, invalidInput("Provider is required")
				}
				status := a.Object("order_status")
				if str(status, "order_state") == "" {
					return nil, invalidInput("Order state is required")
				}
				detail := map[string]any{
					"OrderId":  orderID,
					"Origin":   origin,
					"Provider": provider,
					// Status keys pass through exactly as provided.
					"OrderStatusDetail": status,
				}
				putObj(detail, "OrderCustomerDetail", putFieldTable(a.Object("customer_data"), putCustomerFields))
				putObj(detail, "OrderAmountsDetail", mapFields(a.Object("amounts_data"), putAmountFields))
				putObj(detail, "OrderCustomerBillingDetail", putFieldTable(a.Object("billing_data"), putBillingFields))
				rooms, err := putRoomDetails(a.ObjectSlice("room_data"))
				if err != nil {
					return nil, err
				}
				if len(rooms) > 0 {
					detail["OrderHotelRoomDetail"] = rooms
				}
				for _, f := range putExtraFields {
					if !a.Has(f.key) {
						continue
					}
					if f.sanitize {
						putStr(detail, f.wire, clean(a.String(f.key)))
					} else {
						detail[f.wire] = a.Any(f.key)
					}
				}
				return map[string]any{"OrderPutDetails": []map[string]any{detail}}, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				if ids := bodyList(reply, "OrderId"); len(ids) > 0 {
					if id, ok := ids[0].(string); ok && id != "" {
						return "Order stored: " + id
					}
				}
				return "Order stored"
			},
		},
	}
}

// paymentMethodNames are the payment methods the API accepts.
var paymentMethodNames = []string{
	"tpv", "tpvmanual", "card", "credit", "transference",
	"moneyorder", "paypal", "cash", "financed", "otb", "other", "nil",
}

// eventTypeNames are the reservation event kinds the API journals, in
// the order the documentation lists them.
var eventTypeNames = []string{
	"CONFIRM", "SEND_EMAIL_USER", "SEND_EMAIL_HOTEL", "SEND_EMAIL_USER_INVALID_CARD",
	"TOKENIZE_AUTO_OK", "TOKENIZE_AUTO_INVALID", "TOKENIZE_MANUAL_OK", "TOKENIZE_MANUAL_INVALID",
	"PAYMENT_AUTO_OK", "PAYMENT_AUTO_INVALID", "PAYMENT_MANUAL_OK", "PAYMENT_MANUAL_INVALID",
	"PAYMENT_PAYBYLINK_CREATE", "PAYMENT_REFUND_OK", "PAYMENT_REFUND_INVALID",
	"BOOKINGCOM_AUTO_CANCEL_OK", "BOOKINGCOM_AUTO_CANCEL_DENIED", "BOOKINGCOM_MARK_CARD_INVALID_OK",
	"BOOKINGCOM_MARK_CARD_INVALID_DENIED", "BOOKING_MODIFY_CREDITCARD", "BOOKING_UPGRADE",
	"AUTO_CANCEL_TPV", "AUTO_CANCEL_CARD", "AUTO_CANCEL_PAYPAL", "AUTO_CANCEL_FINANCED",
	"AUTO_CANCEL_TRANSFER", "AUTO_CANCEL_NOSHOW", "CANCEL_MANUAL", "AUTO_CANCEL_VERIFYTOKEN",
	"VERIFYTOKEN_OK", "VERIFYTOKEN_KO",
}

var reservationEventTypes = func() map[string]bool {
	m := make(map[string]bool, len(eventTypeNames))
	for _, name := range eventTypeNames {
		m[name] = true
	}
	return m
}()

// cleanIDList validates that every identifier in the list is non-empty
// and survives sanitization. label names entries in error messages.
func cleanIDList(ids []string, label string) ([]string, error) {
	out := make([]string, 0, len(ids))
	for i, id := range ids {
		if strings.TrimSpace(id) == "" {
			return nil, invalidInput(fmt.Sprintf("%s %d: must be a non-empty string", label, i+1))
		}
		s := clean(id)
		if s == "" {
			return nil, invalidInput(fmt.Sprintf("%s %d: invalid format after sanitization", label, i+1))
		}
		out = append(out, s)
	}
	return out, nil
}

func requiredOrderIDs(a *core.Args) ([]string, error) {
	ids, err := cleanIDList(a.StringSlice("order_ids"), "Order ID")
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, invalidInput("At least one order ID is required")
	}
	return ids, nil
}

// validEventTypes upper-cases, validates and de-duplicates event types
// while keeping their order.
func validEventTypes(types []string) ([]string, error) {
	if len(types) == 0 {
		return nil, invalidInput("At least one event type is required")
	}
	seen := map[string]bool{}
	out := make([]string, 0, len(types))
	for i, eventType := range types {
		if strings.TrimSpace(eventType) == "" {
			return nil, invalidInput(fmt.Sprintf("Event type %d: must be a non-empty string", i+1))
		}
		cleaned := strings.ToUpper(strings.TrimSpace(eventType))
		if !reservationEventTypes[cleaned] {
			return nil, invalidInput(fmt.Sprintf("Event type %d: '%s' is not a valid event type", i+1, eventType))
		}
		if !seen[cleaned] {
			seen[cleaned] = true
			out = append(out, cleaned)
		}
	}
	return out, nil
}

var orderFilterLists = [][2]string{
	{"order_states", "OrderState"},
	{"payment_states", "PaymentState"},
	{"payment_methods", "PaymentMethod"},
	{"reservation_modes", "ReservationMode"},
	{"channels", "Channel"},
	{"customers", "Customer"},
}

func orderSearchFilter(filters map[string]any) map[string]any {
	out := map[string]any{}
	for _, f := range orderFilterLists {
		if list, _ := filters[f[0]].([]any); len(list) > 0 {
			out[f[1]] = list
		}
	}
	if has(filters, "reviewed") {
		out["Reviewed"] = boolVal(filters, "reviewed")
	}
	if has(filters, "from_professional") {
		out["FromProfessional"] = boolVal(filters, "from_professional")
	}
	putStr(out, "Notified", str(filters, "notification_status"))
	return out
}

func modifyPaymentMethod(pm map[string]any) map[string]any {
	out := map[string]any{}
	if boolVal(pm, "credit_card") {
		out["CreditCard"] = true
		if card, _ := pm["card_details"].(map[string]any); len(card) > 0 {
			info := map[string]any{}
			putStr(info, "HolderName", clean(str(card, "holder_name")))
			putStr(info, "Number", clean(str(card, "number")))
			putStr(info, "Code", clean(str(card, "code")))
			if n, ok := intVal(card, "expire_month"); ok && n != 0 {
				info["ExpireDateMonth"] = n
			}
			if n, ok := intVal(card, "expire_year"); ok && n != 0 {
				info["ExpireDateYear"] = n
			}
			putObj(out, "Card", info)
		}
	}
	return out
}

func modifyGiftData(gift map[string]any) (map[string]any, error) {
	out := map[string]any{}
	putStr(out, "Firstname", clean(str(gift, "firstname")))
	putStr(out, "Surname", clean(str(gift, "surname")))
	putStr(out, "Email", clean(str(gift, "email")))
	putStr(out, "Message", clean(str(gift, "message")))
	if has(gift, "anonymous") {
		out["Anonymous"] = boolVal(gift, "anonymous")
	}
	if v := str(gift, "notification_date"); v != "" {
		parsed, err := core.ParseDate("notification_date", v)
		if err != nil {
			return nil, err
		}
		out["GiftNotificationDate"] = parsed
	}
	putTrue(out, "DeleteGift", boolVal(gift, "delete_gift"))
	return out, nil
}

var modifyBillingFields = [][2]string{
	{"name", "Name"},
	{"cif", "Cif"},
	{"address", "Address"},
	{"zip", "Zip"},
	{"city", "City"},
	{"country", "Country"},
}

func modifyBillingData(billing map[string]any) map[string]any {
	out := map[string]any{}
	for _, f := range modifyBillingFields {
		putStr(out, f[1], clean(str(billing, f[0])))
	}
	putTrue(out, "DeleteBilling", boolVal(billing, "delete_billing"))
	return out
}

var modifyCustomerFields = [][2]string{
	{"firstname", "Firstname"},
	{"surname", "Surname"},
	{"passport", "Passport"},
	{"address", "Address"},
	{"city", "City"},
	{"zip", "Zip"},
	{"country", "Country"},
	{"state", "State"},
	{"phone", "Phone"},
	{"fax", "Fax"},
	{"mobile", "Mobile"},
	{"email", "Email"},
	{"arrival_time", "ArrivalTime"},
}

func modifyCustomerData(customer map[string]any) (map[string]any, error) {
	out := map[string]any{}
	for _, f := range modifyCustomerFields {
		putStr(out, f[1], clean(str(customer, f[0])))
	}
	if v := str(customer, "date_of_birthday"); v != "" {
		parsed, err := core.ParseDate("date_of_birthday", v)
		if err != nil {
			return nil, err
		}
		out["DateOfBirthday"] = parsed
	}
	return out, nil
}

func modifyGuestData(guests []map[string]any) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(guests))
	for _, guest := range guests {
		entry := map[string]any{}
		putStr(entry, "Id", clean(str(guest, "id")))
		if n, ok := intVal(guest, "hotel_guest_rph"); ok && n != 0 {
			entry["HotelGuestRPH"] = n
		}
		if n, ok := intVal(guest, "reference_rph_value"); ok && n != 0 {
			entry["ReferenceRPHValue"] = n
		}
		putStr(entry, "Firstname", clean(str(guest, "firstname")))
		putStr(entry, "Surname", clean(str(guest, "surname")))
		putStr(entry, "Passport", clean(str(guest, "passport")))
		putStr(entry, "Email", clean(str(guest, "email")))
		if v := str(guest, "date_of_birthday"); v != "" {
			parsed, err := core.ParseDate("date_of_birthday", v)
			if err != nil {
				return nil, err
			}
			entry["DateOfBirthday"] = parsed
		}
		if len(entry) > 0 {
			out = append(out, entry)
		}
	}
	return out, nil
}

func validPaymentDate(v string) bool {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}

func tpvToken(tpv map[string]any) map[string]any {
	out := map[string]any{}
	putStr(out, "Tpv", str(tpv, "tpv_system"))
	token := map[string]any{}
	putStr(token, "PayerToken", core.SanitizeString(str(tpv, "payer_token"), 200))
	putStr(token, "OperationToken", core.SanitizeString(str(tpv, "operation_token"), 200))
	putStr(token, "OperationSchema", core.SanitizeString(str(tpv, "operation_schema"), 200))
	putStr(token, "Pan", core.SanitizeString(str(tpv, "pan"), 20))
	putObj(out, "NeoToken", token)
	return out
}

// wireField maps a snake_case argument onto its wire name, optionally
// passing the value through sanitization.
type wireField struct {
	key      string
	wire     string
	sanitize bool
}

var putCustomerFields = []wireField{
	{"title", "Title", false},
	{"firstname", "Firstname", true},
	{"surname", "Surname", true},
	{"date_of_birthday", "DateOfBirthday", false},
	{"address", "Address", true},
	{"zip", "Zip", false},
	{"city", "City", true},
	{"country", "Country", false},
	{"phone", "Phone", false},
	{"email", "Email", true},
	// The API spells it Passaport.
	{"passport", "Passaport", false},
	{"state", "State", false},
}

var putBillingFields = []wireField{
	{"name", "Name", true},
	{"cif", "Cif", false},
	{"address", "Address", true},
	{"zip", "Zip", false},
	{"city", "City", true},
	{"country", "Country", false},
}

var putExtraFields = []wireField{
	{"petitions", "Petitions", true},
	{"first_payment", "FirstPayment", false},
	{"second_payment", "SecondPayment", false},
	{"issue_costs", "IssueCosts", false},
	{"info_hotel", "InfoHotel", true},
	{"info_client", "InfoClient", true},
	{"ignore_send_mail", "IgnoreSendMail", false},
}

var putAmountFields = [][2]string{
	{"currency", "Currency"},
	{"amount_final", "AmountFinal"},
	{"amount_total", "AmountTotal"},
	{"amount_base", "AmountBase"},
	{"amount_taxes", "AmountTaxes"},
	{"amount_tourist_tax", "AmountTouristTax"},
}

func putFieldTable(data map[string]any, fields []wireField) map[string]any {
	out := map[string]any{}
	for _, f := range fields {
		v := str(data, f.key)
		if f.sanitize {
			v = clean(v)
		}
		putStr(out, f.wire, v)
	}
	return out
}

func putRoomDetails(rooms []map[string]any) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(rooms))
	for _, room := range rooms {
		detail := map[string]any{}
		if v := str(room, "arrival_date"); v != "" {
			parsed, err := core.ParseDate("arrival_date", v)
			if err != nil {
				return nil, err
			}
			detail["ArrivalDate"] = parsed
		}
		if v := str(room, "departure_date"); v != "" {
			parsed, err := core.ParseDate("departure_date", v)
			if err != nil {
				return nil, err
			}
			detail["DepartureDate"] = parsed
		}
		if hotelRoom, _ := room["hotel_room_detail"].(map[string]any); len(hotelRoom) > 0 {
			detail["HotelRoomDetail"] = map[string]any{
				"HotelId":              hotelRoom["hotel_id"],
				"HotelRoomId":          hotelRoom["hotel_room_id"],
				"HotelRoomName":        hotelRoom["hotel_room_name"],
				"HotelRoomDescription": hotelRoom["hotel_room_description"],
			}
		}
		// The API requires these arrays even when empty.
		detail["OrderHotelBoardDetail"] = []any{}
		detail["OrderHotelGuestDetail"] = []any{}
		out = append(out, detail)
	}
	return out, nil
}
