package tools

import (
	"reflect"
	"testing"
)

func TestBasketCreate(t *testing.T) {
	p := buildPayload(t, "basket_create_rq", nil)
	if len(p) != 0 {
		t.Fatalf("payload = %v, want empty", p)
	}

	p = buildPayload(t, "basket_create_rq", map[string]any{
		"client_device": "mobile",
		"budget_id":     " BU1 ",
		"empty_basket":  true,
		"tracking":      map[string]any{"origin": "googlehpa", "code": "G-77"},
		"client_location": map[string]any{
			"country": "ES",
			"ip":      "10.0.0.4",
		},
	})
	want := map[string]any{
		"ClientDevice":   "mobile",
		"BudgetId":       "BU1",
		"EmptyBasket":    true,
		"Tracking":       map[string]any{"Origin": "googlehpa", "Code": "G-77"},
		"ClientLocation": map[string]any{"Country": "ES", "Ip": "10.0.0.4"},
	}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("payload = %#v, want %#v", p, want)
	}
}

func TestBasketCreateTrackingLocale(t *testing.T) {
	p := buildPayload(t, "basket_create_rq", map[string]any{
		"tracking": map[string]any{"origin": "trivago", "code": "T-1", "locale": "es_ES"},
	})
	wantField(t, p, "Tracking", map[string]any{
		"Origin": "trivago",
		"Code":   "T-1",
		"Locale": "es_ES",
	})
}

func TestBasketProducts(t *testing.T) {
	p := buildPayload(t, "basket_add_product_rq", map[string]any{
		"basket_id":                   "BK1",
		"hotel_room_availability_ids": []any{" AV1 "},
		"generic_product_availabilities": []any{
			map[string]any{"availability_id": "GP1", "quantity": float64(2)},
		},
	})
	wantField(t, p, "BasketId", "BK1")
	wantField(t, p, "HotelRoomAvailabilityId", []string{"AV1"})
	wantField(t, p, "GenericProductAvailability", []map[string]any{
		{"AvailabilityId": "GP1", "Quantity": float64(2)},
	})
}

func TestBasketProductsRequireSomething(t *testing.T) {
	err := buildError(t, "basket_add_product_rq", map[string]any{"basket_id": "BK1"})
	verr := wantValidation(t, err, "At least one product type must be specified to add to the basket")
	if verr.Code != "NO_PRODUCTS_SPECIFIED" {
		t.Fatalf("code = %q, want NO_PRODUCTS_SPECIFIED", verr.Code)
	}

	err = buildError(t, "basket_del_product_rq", map[string]any{"basket_id": "BK1"})
	wantValidation(t, err, "At least one product type must be specified to remove from the basket")
}

func TestBasketIDRequired(t *testing.T) {
	for _, name := range []string{"basket_summary_rq", "basket_lock_rq", "basket_unlock_rq", "basket_delete_rq"} {
		err := buildError(t, name, map[string]any{"basket_id": "   "})
		wantValidation(t, err, "basket_id cannot be empty")
	}
}

func TestBasketLockCallCenter(t *testing.T) {
	p := buildPayload(t, "basket_lock_rq", map[string]any{
		"basket_id": "BK1",
		"call_center_properties": map[string]any{
			"ignore_release": true,
			"override_price": float64(99.9),
		},
	})
	want := map[string]any{
		"BasketId": "BK1",
		"CallCenterProperties": map[string]any{
			"IgnoreRelease": true,
			"OverridePrice": float64(99.9),
		},
	}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("payload = %#v, want %#v", p, want)
	}
}

func TestBasketPropertiesUpdate(t *testing.T) {
	err := buildError(t, "basket_properties_update_rq", map[string]any{
		"basket_id":         "BK1",
		"promo_code_update": map[string]any{"use_promo_code": true},
	})
	verr := wantValidation(t, err, "Promo code is required when use_promo_code is true")
	if verr.Code != "PROMO_CODE_REQUIRED" {
		t.Fatalf("code = %q, want PROMO_CODE_REQUIRED", verr.Code)
	}

	p := buildPayload(t, "basket_properties_update_rq", map[string]any{
		"basket_id":         "BK1",
		"rewards_update":    map[string]any{"enable": true},
		"promo_code_update": map[string]any{"use_promo_code": false},
	})
	want := map[string]any{
		"BasketId":  "BK1",
		"Rewards":   map[string]any{},
		"PromoCode": map[string]any{"UsePromoCode": false},
	}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("payload = %#v, want %#v", p, want)
	}
}

func TestBasketConfirmMinimal(t *testing.T) {
	p := buildPayload(t, "basket_confirm_rq", map[string]any{
		"basket_id": "BK1",
		"budget":    false,
	})
	want := map[string]any{"BasketId": "BK1", "Budget": false}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("payload = %#v, want %#v", p, want)
	}
}

func TestBasketConfirmRooms(t *testing.T) {
	p := buildPayload(t, "basket_confirm_rq", map[string]any{
		"basket_id":               "BK1",
		"customer_language":       "en",
		"avoid_send_client_email": true,
		"hotel_room_confirm_data": []any{map[string]any{
			"hotel_room_rph": float64(1),
			"customer_data": map[string]any{
				"firstname": "Ana",
				"lastname":  "Puig",
				"email":     "ana@example.com",
			},
			"guest_data": []any{map[string]any{
				"guest_rph": float64(1),
				"firstname": "Ana",
				"birthdate": "1990-01-01",
			}},
			"authorization_data": map[string]any{"rewards": true},
			"payment_method": map[string]any{
				"credit_card": true,
				"card": map[string]any{
					"holder_name":       "ANA PUIG",
					"number":            "4111111111111111",
					"expire_date_month": float64(12),
					"expire_date_year":  float64(2028),
				},
			},
			"payment_type": map[string]any{"deposit": true, "establishment": false},
			"payment_plan": map[string]any{"payment_plan_id": "PL1"},
		}},
		"gift_data": map[string]any{"firstname": "Leo", "anonymous": true},
	})

	wantField(t, p, "BasketId", "BK1")
	wantField(t, p, "CustomerLanguage", "en")
	wantField(t, p, "AvoidSendClientEmail", true)
	wantField(t, p, "GiftData", map[string]any{"Firstname": "Leo", "Anonymous": true})

	rooms, ok := p["HotelRoomConfirmData"].([]map[string]any)
	if !ok || len(rooms) != 1 {
		t.Fatalf("HotelRoomConfirmData = %#v, want one room", p["HotelRoomConfirmData"])
	}
	want := map[string]any{
		"HotelRoomRPH": float64(1),
		"CustomerData": map[string]any{
			"Firstname": "Ana",
			"Lastname":  "Puig",
			"Email":     "ana@example.com",
		},
		"GuestData": []map[string]any{{
			"GuestRPH":  float64(1),
			"Firstname": "Ana",
			"Birthdate": "1990-01-01",
		}},
		"AuthorizationData": map[string]any{"Rewards": true, "Offers": false},
		"PaymentMethod": map[string]any{
			"Creditcard": true,
			"Card": map[string]any{
				"HolderName":      "ANA PUIG",
				"Number":          "4111111111111111",
				"ExpireDateMonth": float64(12),
				"ExpireDateYear":  float64(2028),
			},
		},
		"PaymentType": map[string]any{"Deposit": true},
		"PaymentPlan": map[string]any{"PaymentPlanId": "PL1"},
	}
	if !reflect.DeepEqual(rooms[0], want) {
		t.Fatalf("room = %#v, want %#v", rooms[0], want)
	}
}
