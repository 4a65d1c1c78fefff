package tools

import (
	"github.com/bookhub/bookhub/internal/core"
	"github.com/bookhub/bookhub/internal/neobookings"
)

func basketTools() []*Tool {
	return []*Tool{
		{
			Name:        "basket_create_rq",
			Description: "Create a shopping basket, optionally seeded from a budget or order",
			Path:        "/BasketCreateRQ",
			Category:    "basket",
			Schema: map[string]any{
				"client_device":          enumProp("Client device type", "desktop", "mobile", "tablet"),
				"origin":                 strProp("Origin of the reservation"),
				"tracking":               trackingProp(),
				"client_location":        clientLocationProp(),
				"budget_id":              strProp("Budget identifier to create the basket from"),
				"order_id":               strProp("Order identifier to create the basket from"),
				"empty_basket":           boolProp("Create an empty basket from the order"),
				"call_center_properties": callCenterProp(),
				"language":               langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				p := map[string]any{}
				if loc := a.Object("client_location"); loc != nil {
					putObj(p, "ClientLocation", mapFields(loc, clientLocationFields))
				}
				putStr(p, "ClientDevice", a.String("client_device"))
				putStr(p, "Origin", clean(a.String("origin")))
				if tracking := a.Object("tracking"); tracking != nil {
					t := map[string]any{
						"Origin": str(tracking, "origin"),
						"Code":   str(tracking, "code"),
					}
					putStr(t, "Locale", str(tracking, "locale"))
					p["Tracking"] = t
				}
				putStr(p, "BudgetId", clean(a.String("budget_id")))
				putStr(p, "OrderId", clean(a.String("order_id")))
				putTrue(p, "EmptyBasket", a.Bool("empty_basket"))
				if cc := a.Object("call_center_properties"); cc != nil {
					putObj(p, "CallCenterProperties", mapFields(cc, callCenterFields))
				}
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string {
				if info := bodyObject(reply, "BasketInfo"); info != nil {
					if id := str(info, "BasketId"); id != "" {
						return "Basket created: " + id
					}
				}
				return "Basket created"
			},
		},
		{
			Name:        "basket_add_product_rq",
			Description: "Add room, extra, package or generic product availabilities to a basket",
			Path:        "/BasketAddProductRQ",
			Category:    "basket",
			Required:    []string{"basket_id"},
			Schema:      basketProductSchema("add"),
			Build: func(a *core.Args) (map[string]any, error) {
				return buildBasketProducts(a, "add to")
			},
			Summarize: func(reply *neobookings.Reply) string {
				return "Products added to basket"
			},
		},
		{
			Name:        "basket_del_product_rq",
			Description: "Remove room, extra, package or generic product availabilities from a basket",
			Path:        "/BasketDelProductRQ",
			Category:    "basket",
			Required:    []string{"basket_id"},
			Schema:      basketProductSchema("remove"),
			Build: func(a *core.Args) (map[string]any, error) {
				return buildBasketProducts(a, "remove from")
			},
			Summarize: func(reply *neobookings.Reply) string {
				return "Products removed from basket"
			},
		},
		{
			Name:        "basket_summary_rq",
			Description: "Retrieve the current contents and totals of a basket",
			Path:        "/BasketSummaryRQ",
			Category:    "basket",
			Required:    []string{"basket_id"},
			Schema: map[string]any{
				"basket_id":              strProp("Basket identifier"),
				"call_center_properties": callCenterProp(),
				"language":               langProp(),
			},
			Build:     buildBasketWithCallCenter,
			Summarize: func(reply *neobookings.Reply) string { return "Basket summary retrieved" },
		},
		{
			Name:        "basket_lock_rq",
			Description: "Lock a basket against further modification before confirmation",
			Path:        "/BasketLockRQ",
			Category:    "basket",
			Required:    []string{"basket_id"},
			Schema: map[string]any{
				"basket_id":              strProp("Basket identifier"),
				"call_center_properties": callCenterProp(),
				"language":               langProp(),
			},
			Build:     buildBasketWithCallCenter,
			Summarize: func(reply *neobookings.Reply) string { return "Basket locked" },
		},
		{
			Name:        "basket_unlock_rq",
			Description: "Unlock a previously locked basket",
			Path:        "/BasketUnLockRQ",
			Category:    "basket",
			Required:    []string{"basket_id"},
			Schema: map[string]any{
				"basket_id": strProp("Basket identifier"),
				"language":  langProp(),
			},
			Build:     buildBasketOnly,
			Summarize: func(reply *neobookings.Reply) string { return "Basket unlocked" },
		},
		{
			Name:        "basket_properties_update_rq",
			Description: "Update basket-level properties such as rewards and promo codes",
			Path:        "/BasketPropertiesUpdateRQ",
			Category:    "basket",
			Required:    []string{"basket_id"},
			Schema: map[string]any{
				"basket_id": strProp("Basket identifier"),
				"rewards_update": objProp("Rewards program update", map[string]any{
					"enable": boolProp("Enable or disable rewards for this basket"),
				}),
				"promo_code_update": objProp("Promotional code update", map[string]any{
					"use_promo_code": boolProp("Apply (true) or remove (false) a promotional code"),
					"promo_code":     strProp("Promotional code, required when use_promo_code is true"),
				}),
				"language": langProp(),
			},
			Build: func(a *core.Args) (map[string]any, error) {
				basketID, err := reqStr(a, "basket_id")
				if err != nil {
					return nil, err
				}
				promo := a.Object("promo_code_update")
				if promo != nil && boolVal(promo, "use_promo_code") && str(promo, "promo_code") == "" {
					return nil, neobookings.NewValidationError("PROMO_CODE_REQUIRED",
						"Promo code is required when use_promo_code is true",
						map[string]any{"field": "promo_code_update"})
				}
				p := map[string]any{"BasketId": basketID}
				if a.Has("rewards_update") {
					// The API models a rewards refresh as an empty block.
					p["Rewards"] = map[string]any{}
				}
				if promo != nil {
					obj := map[string]any{"UsePromoCode": boolVal(promo, "use_promo_code")}
					putStr(obj, "PromoCode", clean(str(promo, "promo_code")))
					p["PromoCode"] = obj
				}
				return p, nil
			},
			Summarize: func(reply *neobookings.Reply) string { return "Basket properties updated" },
		},
		{
			Name:        "basket_confirm_rq",
			Description: "Confirm a basket into a reservation or budget with guest and payment data",
			Path:        "/BasketConfirmRQ",
			Category:    "basket",
			Required:    []string{"basket_id"},
			Schema:      basketConfirmSchema(),
			Build:       buildBasketConfirm,
			Summarize: func(reply *neobookings.Reply) string {
				if id := bodyString(reply, "OrderId"); id != "" {
					return "Reservation confirmed, order " + id
				}
				if id := bodyString(reply, "BudgetId"); id != "" {
					return "Budget created: " + id
				}
				return "Basket confirmed"
			},
		},
		{
			Name:        "basket_delete_rq",
			Description: "Delete a basket and release its holds",
			Path:        "/BasketDeleteRQ",
			Category:    "basket",
			Required:    []string{"basket_id"},
			Schema: map[string]any{
				"basket_id": strProp("Basket identifier"),
				"language":  langProp(),
			},
			Build:     buildBasketOnly,
			Summarize: func(reply *neobookings.Reply) string { return "Basket deleted" },
		},
	}
}

var callCenterFields = [][2]string{
	{"ignore_release", "IgnoreRelease"},
	{"ignore_min_stay", "IgnoreMinStay"},
	{"ignore_availability", "IgnoreAvailability"},
	{"override_price", "OverridePrice"},
	{"override_deposit", "OverrideDeposit"},
	{"override_discount", "OverrideDiscount"},
	{"ignore_required_extra", "IgnoreRequiredExtra"},
	{"ignore_required_fields", "IgnoreRequiredFields"},
	{"override_country", "OverrideCountry"},
	{"override_inbound_method", "OverrideInboundMethod"},
}

var customerFields = [][2]string{
	{"firstname", "Firstname"},
	{"lastname", "Lastname"},
	{"passport", "Passport"},
	{"email", "Email"},
	{"address", "Address"},
	{"city", "City"},
	{"postcode", "Postcode"},
	{"country", "Country"},
	{"state", "State"},
	{"phone", "Phone"},
	{"arrival_time", "ArrivalTime"},
	{"special_requests", "SpecialRequests"},
}

var billingFields = [][2]string{
	{"fiscal_name", "FiscalName"},
	{"fiscal_id", "FiscalId"},
	{"fiscal_address", "FiscalAddress"},
	{"postal_code", "PostalCode"},
	{"city", "City"},
	{"country", "Country"},
}

var guestFields = [][2]string{
	{"firstname", "Firstname"},
	{"lastname", "Lastname"},
	{"birthdate", "Birthdate"},
	{"passport", "Passport"},
	{"email", "Email"},
}

var giftFields = [][2]string{
	{"firstname", "Firstname"},
	{"surname", "Surname"},
	{"email", "Email"},
	{"message", "Message"},
	{"anonymous", "Anonymous"},
	{"gift_notification_date", "GiftNotificationDate"},
}

// paymentMethodKeys map the payment toggles. Opentobuy and Creditcard are
// what the API expects; only the first letter is upper-cased.
var paymentMethodKeys = [][2]string{
	{"pos", "Pos"},
	{"transfer", "Transfer"},
	{"paypal", "Paypal"},
	{"financed", "Financed"},
	{"open_to_buy", "Opentobuy"},
	{"credit_card", "Creditcard"},
}

func callCenterProp() map[string]any {
	return objProp("Call center overrides", map[string]any{
		"ignore_release":          boolProp("Ignore release restrictions"),
		"ignore_min_stay":         boolProp("Ignore minimum stay restrictions"),
		"ignore_availability":     boolProp("Ignore availability restrictions"),
		"override_price":          numProp("Override the price"),
		"override_deposit":        numProp("Override the deposit"),
		"override_discount":       numProp("Override the discount"),
		"ignore_required_extra":   boolProp("Ignore required extras"),
		"ignore_required_fields":  boolProp("Ignore required fields"),
		"override_country":        strProp("Override the customer country"),
		"override_inbound_method": enumProp("Override the inbound method", "inbound", "outbound", "email", "whatsapp", "walkin"),
	})
}

func clientLocationProp() map[string]any {
	return objProp("Client location", map[string]any{
		"country": strProp("Country where the client is located"),
		"ip":      strProp("Client IP address"),
	})
}

func trackingProp() map[string]any {
	return objProp("Tracking information for analytics", map[string]any{
		"origin": enumProp("Tracking origin", "googlehpa", "trivago", "trivagocpa", "tripadvisor"),
		"code":   strProp("Tracking code"),
		"locale": strProp("Tracking locale"),
	})
}

func productQuantityProp(desc string) map[string]any {
	return arrayProp(desc, objItem(map[string]any{
		"availability_id": strProp("Availability identifier"),
		"quantity":        intProp("Quantity of products"),
	}, "availability_id", "quantity"))
}

func basketProductSchema(verb string) map[string]any {
	return map[string]any{
		"basket_id":                            strProp("Basket identifier"),
		"hotel_room_availability_ids":          strArrayProp("Hotel room availability identifiers to " + verb),
		"hotel_room_extra_availability_ids":    strArrayProp("Hotel room extra availability identifiers to " + verb),
		"package_availability_ids":             strArrayProp("Package availability identifiers to " + verb),
		"package_extra_availability_ids":       strArrayProp("Package extra availability identifiers to " + verb),
		"generic_product_availabilities":       productQuantityProp("Generic product availabilities to " + verb),
		"generic_product_extra_availabilities": productQuantityProp("Generic product extra availabilities to " + verb),
		"language":                             langProp(),
	}
}

func basketConfirmSchema() map[string]any {
	return map[string]any{
		"basket_id":                      strProp("Basket identifier"),
		"customer_language":              langProp(),
		"order_id":                       strProp("Order identifier for modification operations"),
		"room_upgrade":                   boolProp("Confirmation is a room upgrade"),
		"avoid_send_client_email":        boolProp("Skip the confirmation email to the client"),
		"avoid_send_establishment_email": boolProp("Skip the notification email to the establishment"),
		"hotel_room_confirm_data": arrayProp("Per-room confirmation data", objItem(map[string]any{
			"hotel_room_rph": intProp("Room reference number"),
			"customer_data": objProp("Reservation holder", map[string]any{
				"firstname":        strProp("First name"),
				"lastname":         strProp("Last name"),
				"passport":         strProp("Passport or ID document"),
				"email":            strProp("Email address"),
				"address":          strProp("Street address"),
				"city":             strProp("City"),
				"postcode":         strProp("Postal code"),
				"country":          strProp("Country code"),
				"state":            strProp("State or province"),
				"phone":            strProp("Phone number"),
				"arrival_time":     strProp("Expected arrival time"),
				"special_requests": strProp("Special requests"),
			}),
			"billing_data": objProp("Billing information", map[string]any{
				"fiscal_name":    strProp("Fiscal name"),
				"fiscal_id":      strProp("Fiscal identifier"),
				"fiscal_address": strProp("Fiscal address"),
				"postal_code":    strProp("Postal code"),
				"city":           strProp("City"),
				"country":        strProp("Country code"),
			}),
			"guest_data": arrayProp("Guests in the room", objItem(map[string]any{
				"guest_rph": intProp("Guest reference number"),
				"firstname": strProp("First name"),
				"lastname":  strProp("Last name"),
				"birthdate": dateProp("Birth date"),
				"passport":  strProp("Passport or ID document"),
				"email":     strProp("Email address"),
			}, "guest_rph")),
			"authorization_data": objProp("Marketing authorizations", map[string]any{
				"rewards": boolProp("Join the rewards program"),
				"offers":  boolProp("Receive offers"),
			}),
			"payment_method": objProp("Payment method", map[string]any{
				"pos":         boolProp("Point of sale"),
				"transfer":    boolProp("Bank transfer"),
				"paypal":      boolProp("PayPal"),
				"financed":    boolProp("Financed payment"),
				"open_to_buy": boolProp("Open to buy"),
				"credit_card": boolProp("Credit card"),
				"card": objProp("Card details", map[string]any{
					"holder_name":       strProp("Card holder name"),
					"number":            strProp("Card number"),
					"code":              strProp("Security code"),
					"expire_date_month": intProp("Expiry month"),
					"expire_date_year":  intProp("Expiry year"),
				}),
			}),
			"payment_type": objProp("Payment type", map[string]any{
				"deposit":       boolProp("Pay a deposit"),
				"establishment": boolProp("Pay at the establishment"),
			}),
			"payment_plan": objProp("Payment plan", map[string]any{
				"payment_plan_id": strProp("Payment plan identifier"),
			}),
		}, "hotel_room_rph", "guest_data")),
		"gtm":        strProp("Google Tag Manager information"),
		"origin_ads": strProp("Advertisement origin"),
		"gift_data": objProp("Gift voucher information", map[string]any{
			"firstname":              strProp("Recipient first name"),
			"surname":                strProp("Recipient surname"),
			"email":                  strProp("Recipient email"),
			"message":                strProp("Gift message"),
			"anonymous":              boolProp("Hide the sender"),
			"gift_notification_date": strProp("Notification date (YYYY-MM-DDTHH:MM:SS)"),
		}),
		"metadata": strProp("Additional reservation metadata"),
		"budget":   boolProp("Create a budget instead of a reservation"),
		"language": langProp(),
	}
}

func buildBasketOnly(a *core.Args) (map[string]any, error) {
	basketID, err := reqStr(a, "basket_id")
	if err != nil {
		return nil, err
	}
	return map[string]any{"BasketId": basketID}, nil
}

func buildBasketWithCallCenter(a *core.Args) (map[string]any, error) {
	p, err := buildBasketOnly(a)
	if err != nil {
		return nil, err
	}
	if cc := a.Object("call_center_properties"); cc != nil {
		putObj(p, "CallCenterProperties", mapFields(cc, callCenterFields))
	}
	return p, nil
}

// buildBasketProducts maps the six product lists shared by the add and
// del endpoints. At least one list must contribute something.
func buildBasketProducts(a *core.Args, action string) (map[string]any, error) {
	p, err := buildBasketOnly(a)
	if err != nil {
		return nil, err
	}
	putList(p, "HotelRoomAvailabilityId", cleanList(a.StringSlice("hotel_room_availability_ids")))
	putList(p, "HotelRoomExtraAvailabilityId", cleanList(a.StringSlice("hotel_room_extra_availability_ids")))
	putList(p, "PackageAvailabilityId", cleanList(a.StringSlice("package_availability_ids")))
	putList(p, "PackageExtraAvailabilityId", cleanList(a.StringSlice("package_extra_availability_ids")))
	if items := quantityItems(a.ObjectSlice("generic_product_availabilities")); len(items) > 0 {
		p["GenericProductAvailability"] = items
	}
	if items := quantityItems(a.ObjectSlice("generic_product_extra_availabilities")); len(items) > 0 {
		p["GenericProductExtraAvailability"] = items
	}
	if len(p) == 1 {
		return nil, neobookings.NewValidationError("NO_PRODUCTS_SPECIFIED",
			"At least one product type must be specified to "+action+" the basket", nil)
	}
	return p, nil
}

func quantityItems(items []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		out = append(out, map[string]any{
			"AvailabilityId": str(item, "availability_id"),
			"Quantity":       item["quantity"],
		})
	}
	return out
}

func buildBasketConfirm(a *core.Args) (map[string]any, error) {
	basketID, err := reqStr(a, "basket_id")
	if err != nil {
		return nil, err
	}
	p := map[string]any{"BasketId": basketID}
	putStr(p, "CustomerLanguage", a.String("customer_language"))
	putStr(p, "OrderId", clean(a.String("order_id")))
	putTrue(p, "RoomUpgrade", a.Bool("room_upgrade"))
	putTrue(p, "AvoidSendClientEmail", a.Bool("avoid_send_client_email"))
	putTrue(p, "AvoidSendEstablishmentEmail", a.Bool("avoid_send_establishment_email"))
	if rooms := a.ObjectSlice("hotel_room_confirm_data"); len(rooms) > 0 {
		p["HotelRoomConfirmData"] = formatRoomConfirmData(rooms)
	}
	putStr(p, "GTM", a.String("gtm"))
	putStr(p, "OriginAds", a.String("origin_ads"))
	putStr(p, "MetaData", a.String("metadata"))
	if a.Has("budget") {
		p["Budget"] = a.Bool("budget")
	}
	if gift := a.Object("gift_data"); gift != nil {
		putObj(p, "GiftData", mapFields(gift, giftFields))
	}
	return p, nil
}

func formatRoomConfirmData(rooms []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(rooms))
	for _, room := range rooms {
		formatted := map[string]any{
			"HotelRoomRPH": room["hotel_room_rph"],
			"GuestData":    formatGuestData(objList(room["guest_data"])),
		}
		if cd, ok := room["customer_data"].(map[string]any); ok {
			formatted["CustomerData"] = mapFields(cd, customerFields)
		}
		if bd, ok := room["billing_data"].(map[string]any); ok {
			formatted["BillingData"] = mapFields(bd, billingFields)
		}
		if ad, ok := room["authorization_data"].(map[string]any); ok {
			formatted["AuthorizationData"] = map[string]any{
				"Rewards": boolVal(ad, "rewards"),
				"Offers":  boolVal(ad, "offers"),
			}
		}
		if pm, ok := room["payment_method"].(map[string]any); ok {
			formatted["PaymentMethod"] = formatPaymentMethod(pm)
		}
		if pt, ok := room["payment_type"].(map[string]any); ok {
			typeObj := map[string]any{"Deposit": pt["deposit"]}
			putTrue(typeObj, "Establishment", boolVal(pt, "establishment"))
			formatted["PaymentType"] = typeObj
		}
		if pp, ok := room["payment_plan"].(map[string]any); ok {
			formatted["PaymentPlan"] = map[string]any{"PaymentPlanId": pp["payment_plan_id"]}
		}
		out = append(out, formatted)
	}
	return out
}

func formatGuestData(guests []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(guests))
	for _, guest := range guests {
		formatted := mapFields(guest, guestFields)
		formatted["GuestRPH"] = guest["guest_rph"]
		out = append(out, formatted)
	}
	return out
}

func formatPaymentMethod(pm map[string]any) map[string]any {
	out := mapFields(pm, paymentMethodKeys)
	if card, _ := pm["card"].(map[string]any); len(card) > 0 {
		c := map[string]any{
			"Number":          card["number"],
			"ExpireDateMonth": card["expire_date_month"],
			"ExpireDateYear":  card["expire_date_year"],
		}
		putStr(c, "HolderName", str(card, "holder_name"))
		putStr(c, "Code", str(card, "code"))
		out["Card"] = c
	}
	return out
}
