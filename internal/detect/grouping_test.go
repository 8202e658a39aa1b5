package detect

import (
	"testing"

	"github.com/akravets/bureauscan/internal/model"
)

func TestGroupKeyToleratesSpellingVariants(t *testing.T) {
	a := model.AccountRecord{CreditorName: "CAPITAL ONE BANK USA", AccountNumberLast4: "1234"}
	b := model.AccountRecord{CreditorName: "Capital One Bank, USA N.A.", AccountNumberLast4: "1234"}
	if groupKey(a) != groupKey(b) {
		t.Errorf("keys differ: %q vs %q", groupKey(a), groupKey(b))
	}
}

func TestGroupKeySeparatesAccounts(t *testing.T) {
	a := model.AccountRecord{CreditorName: "CHASE BANK", AccountNumberLast4: "1234"}
	b := model.AccountRecord{CreditorName: "CHASE BANK", AccountNumberLast4: "5678"}
	if groupKey(a) == groupKey(b) {
		t.Error("different last-4 mapped to the same key")
	}

	c := model.AccountRecord{CreditorName: "WELLS FARGO", AccountNumberLast4: "1234"}
	if groupKey(a) == groupKey(c) {
		t.Error("different creditors mapped to the same key")
	}
}

func TestGroupRecordsPreservesOrder(t *testing.T) {
	records := []model.AccountRecord{
		{CreditorName: "CHASE BANK", AccountNumberLast4: "1234", Bureau: model.BureauTransUnion},
		{CreditorName: "WELLS FARGO", AccountNumberLast4: "9999", Bureau: model.BureauTransUnion},
		{CreditorName: "CHASE BANK", AccountNumberLast4: "1234", Bureau: model.BureauExperian},
	}

	groups := groupRecords(records)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].item != "CHASE BANK #1234" {
		t.Errorf("first group = %q, want CHASE BANK #1234", groups[0].item)
	}
	if len(groups[0].records) != 2 {
		t.Errorf("first group records = %d, want 2", len(groups[0].records))
	}
	if groups[1].item != "WELLS FARGO #9999" {
		t.Errorf("second group = %q, want WELLS FARGO #9999", groups[1].item)
	}
}

func TestDisplayItem(t *testing.T) {
	tests := []struct {
		rec  model.AccountRecord
		want string
	}{
		{model.AccountRecord{CreditorName: "CHASE BANK", AccountNumberLast4: "1234"}, "CHASE BANK #1234"},
		{model.AccountRecord{CreditorName: "CHASE BANK"}, "CHASE BANK"},
		{model.AccountRecord{AccountNumberLast4: "1234"}, "UNKNOWN #1234"},
	}
	for _, tt := range tests {
		if got := displayItem(tt.rec); got != tt.want {
			t.Errorf("displayItem(%q/%q) = %q, want %q", tt.rec.CreditorName, tt.rec.AccountNumberLast4, got, tt.want)
		}
	}
}
