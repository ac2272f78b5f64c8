package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestPatchHolidayRequest_PropertyListTriState(t *testing.T) {
	actor := uuid.New()
	holidayID := uuid.New()

	t.Run("absent key leaves the mapping set alone", func(t *testing.T) {
		var req PatchHolidayRequest
		if err := json.Unmarshal([]byte(`{"holiday_name":"Easter"}`), &req); err != nil {
			t.Fatal(err)
		}
		in, err := req.ToInput(holidayID, actor)
		if err != nil {
			t.Fatal(err)
		}
		if in.PropertyIDs != nil {
			t.Error("absent property_ids must map to nil (no reconciliation)")
		}
		if in.Name == nil || *in.Name != "Easter" {
			t.Errorf("Name = %v, want Easter", in.Name)
		}
	})

	t.Run("explicit empty list reconciles to zero", func(t *testing.T) {
		var req PatchHolidayRequest
		if err := json.Unmarshal([]byte(`{"property_ids":[]}`), &req); err != nil {
			t.Fatal(err)
		}
		in, err := req.ToInput(holidayID, actor)
		if err != nil {
			t.Fatal(err)
		}
		if in.PropertyIDs == nil {
			t.Fatal("explicit empty list must map to a non-nil slice")
		}
		if len(*in.PropertyIDs) != 0 {
			t.Errorf("len = %d, want 0", len(*in.PropertyIDs))
		}
	})

	t.Run("explicit null counts as an empty list", func(t *testing.T) {
		var req PatchHolidayRequest
		if err := json.Unmarshal([]byte(`{"property_ids":null}`), &req); err != nil {
			t.Fatal(err)
		}
		in, err := req.ToInput(holidayID, actor)
		if err != nil {
			t.Fatal(err)
		}
		if in.PropertyIDs == nil || len(*in.PropertyIDs) != 0 {
			t.Errorf("PropertyIDs = %v, want empty non-nil slice", in.PropertyIDs)
		}
	})
}

func TestPatchHolidayRequest_DateValidation(t *testing.T) {
	actor := uuid.New()
	holidayID := uuid.New()

	t.Run("both dates set in wrong order is rejected", func(t *testing.T) {
		var req PatchHolidayRequest
		body := `{"holiday_start_date":"2024-06-20","holiday_end_date":"2024-06-10"}`
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatal(err)
		}
		if _, err := req.ToInput(holidayID, actor); err == nil {
			t.Error("end date before start date must be rejected")
		}
	})

	t.Run("single date change passes; the service re-checks after merge", func(t *testing.T) {
		var req PatchHolidayRequest
		if err := json.Unmarshal([]byte(`{"holiday_end_date":"2024-06-10"}`), &req); err != nil {
			t.Fatal(err)
		}
		in, err := req.ToInput(holidayID, actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.EndDate == nil || in.StartDate != nil {
			t.Error("only the end date should be set")
		}
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		var req PatchHolidayRequest
		if err := json.Unmarshal([]byte(`{"holiday_start_date":"20-06-2024"}`), &req); err != nil {
			t.Fatal(err)
		}
		if _, err := req.ToInput(holidayID, actor); err == nil {
			t.Error("malformed date must be rejected")
		}
	})
}

func TestCreateHolidayRequest_ToInput(t *testing.T) {
	actor := uuid.New()

	t.Run("valid request parses dates", func(t *testing.T) {
		req := CreateHolidayRequest{
			HolidayName:      "  Midsummer ",
			HolidayYear:      2024,
			HolidayStartDate: "2024-06-15",
			HolidayEndDate:   "2024-06-18",
		}
		in, err := req.ToInput(actor)
		if err != nil {
			t.Fatal(err)
		}
		if in.Name != "Midsummer" {
			t.Errorf("Name = %q, want trimmed Midsummer", in.Name)
		}
		if in.StartDate.Format("2006-01-02") != "2024-06-15" {
			t.Errorf("StartDate = %s", in.StartDate)
		}
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		req := CreateHolidayRequest{
			HolidayName:      "Backwards",
			HolidayYear:      2024,
			HolidayStartDate: "2024-06-18",
			HolidayEndDate:   "2024-06-15",
		}
		if _, err := req.ToInput(actor); err == nil {
			t.Error("end date before start date must be rejected")
		}
	})
}
