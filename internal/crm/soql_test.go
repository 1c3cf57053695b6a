package crm

import (
	"errors"
	"strings"
	"testing"

	appErrors "github.com/unclebandit/fabricator-bff/internal/errors"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Demo Fabricator", `'Demo Fabricator'`},
		{"O'Brien Windows", `'O\'Brien Windows'`},
		{`back\slash`, `'back\\slash'`},
		{"x' OR Name != '", `'x\' OR Name != \''`},
		{"line\nbreak\ttab", `'line\nbreak\ttab'`},
		{`say "hi"`, `'say \"hi\"'`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestValidateID(t *testing.T) {
	for _, ok := range []string{"0065g00000AbCdEAAZ", "FT-000932", "SR_001", "00001026"} {
		if err := ValidateID(ok); err != nil {
			t.Errorf("ValidateID(%q) unexpected error %v", ok, err)
		}
	}
	for _, bad := range []string{"", "a'b", "x OR 1=1", strings.Repeat("a", 65), "id;DROP"} {
		if err := ValidateID(bad); !errors.Is(err, appErrors.ErrInvalidIdentifier) {
			t.Errorf("ValidateID(%q) expected ErrInvalidIdentifier, got %v", bad, err)
		}
	}
}

func TestIsRecordID(t *testing.T) {
	if !IsRecordID("0065g00000AbCdE") || !IsRecordID("0065g00000AbCdEAAZ") {
		t.Error("expected 15 and 18 character ids to be record ids")
	}
	if IsRecordID("SR-001") || IsRecordID("00001026") || IsRecordID("0065g00000AbCdEA") {
		t.Error("expected non record ids to be rejected")
	}
}

func TestLeadQuery(t *testing.T) {
	q, err := LeadQuery("O'Brien").WhereID("Id", "0065g00000AbCdEAAZ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := q.Limit(1).String()

	for _, want := range []string{
		"SELECT Id, Name, StageName",
		"(SELECT Contact.Name, Contact.Phone, Contact.Email FROM OpportunityContactRoles)",
		"(SELECT Id, Name, Product2.Name, Quantity, Length__c, Width__c, Thickness__c FROM OpportunityLineItems)",
		"FROM Opportunity WHERE Fabricator_Name__c = 'O\\'Brien' AND Id = '0065g00000AbCdEAAZ'",
		"ORDER BY CreatedDate DESC LIMIT 1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("query missing %q\n%s", want, got)
		}
	}
}

func TestWhereIDRejectsInjection(t *testing.T) {
	if _, err := CaseQuery("Demo").WhereID("Id", "x' OR Id != '"); !errors.Is(err, appErrors.ErrInvalidIdentifier) {
		t.Errorf("expected ErrInvalidIdentifier, got %v", err)
	}
}
