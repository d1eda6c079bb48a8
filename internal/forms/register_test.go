package forms

import (
	"errors"
	"reflect"
	"testing"

	"github.com/workling/portal/internal/core/domain"
)

func TestRegisterForm_Parse_WorkerShaping(t *testing.T) {
	f := RegisterForm{
		Name:         "A",
		Email:        "a@x.com",
		Password:     "p",
		Role:         "worker",
		Price:        "500",
		Skills:       "React, Go",
		Certificates: "",
	}

	in, err := f.Parse()
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if !reflect.DeepEqual(in.Skills, []string{"React", "Go"}) {
		t.Fatalf("unexpected skills: %v", in.Skills)
	}
	if !reflect.DeepEqual(in.Certificates, []string{""}) {
		t.Fatalf("unexpected certificates: %v", in.Certificates)
	}
	if in.Price == nil || *in.Price != 500 {
		t.Fatalf("expected numeric price 500, got %v", in.Price)
	}
}

func TestRegisterForm_Parse_EmployerOmitsPrice(t *testing.T) {
	f := RegisterForm{Name: "B", Email: "b@x.com", Password: "p", Role: "employer"}
	in, err := f.Parse()
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if in.Price != nil {
		t.Fatalf("employer payload must not carry a price")
	}
}

func TestRegisterForm_Parse_MissingRequiredFields(t *testing.T) {
	cases := []RegisterForm{
		{Email: "a@x.com", Password: "p", Role: "worker", Price: "1"},
		{Name: "A", Password: "p", Role: "worker", Price: "1"},
		{Name: "A", Email: "a@x.com", Role: "worker", Price: "1"},
		{Name: "A", Email: "a@x.com", Password: "p"},
		{Name: "A", Email: "a@x.com", Password: "p", Role: "worker"}, // price required for workers
		{Name: "A", Email: "a@x.com", Password: "p", Role: "admin"},
	}

	for i, f := range cases {
		if _, err := f.Parse(); err == nil {
			t.Fatalf("case %d: expected validation error for %+v", i, f)
		}
	}
}

func TestRegisterForm_Parse_NonNumericPrice(t *testing.T) {
	f := RegisterForm{Name: "A", Email: "a@x.com", Password: "p", Role: "worker", Price: "cheap"}
	if _, err := f.Parse(); err == nil {
		t.Fatalf("expected error for non-numeric price")
	}
}

func TestJobForm_Parse(t *testing.T) {
	if err := (JobForm{Title: "Fix bug", Description: "..."}).Parse(); err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if err := (JobForm{Title: "Fix bug"}).Parse(); !errors.Is(err, domain.ErrEmptyJobForm) {
		t.Fatalf("expected ErrEmptyJobForm, got %v", err)
	}
	if err := (JobForm{Description: "..."}).Parse(); !errors.Is(err, domain.ErrEmptyJobForm) {
		t.Fatalf("expected ErrEmptyJobForm, got %v", err)
	}
}

func TestSplitList(t *testing.T) {
	if got := SplitList("React, Go"); !reflect.DeepEqual(got, []string{"React", "Go"}) {
		t.Fatalf("unexpected split: %v", got)
	}
	if got := SplitList(""); !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("empty input must yield one empty element, got %v", got)
	}
}
