package extract

import "testing"

func TestExtractClientVariants(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantName  string
		wantState string
	}{
		{
			"labeled with colon",
			"Name: Jane Q Consumer\n456 Oak Ave, Austin, TX 78701\n",
			"Jane Q Consumer", "TX",
		},
		{
			"consumer name label",
			"Consumer Name  JOHN PUBLIC\nMiami, FL 33101-4455\n",
			"JOHN PUBLIC", "FL",
		},
		{
			"client name with dash",
			"Client Name - Mary Smith\n",
			"Mary Smith", "",
		},
		{
			"no identity lines",
			"Account #  ****1234\n",
			"", "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := extractClient(splitLines(tt.text), tt.text, 100)
			if client.Name != tt.wantName {
				t.Errorf("name = %q, want %q", client.Name, tt.wantName)
			}
			if client.State != tt.wantState {
				t.Errorf("state = %q, want %q", client.State, tt.wantState)
			}
		})
	}
}

func TestExtractClientScanWindow(t *testing.T) {
	// Identity lines past the scan window are ignored
	text := "line one\nline two\nName: Too Late\n"
	client := extractClient(splitLines(text), text, 2)
	if client.Name != "" {
		t.Errorf("name = %q, want empty (outside scan window)", client.Name)
	}
}

func TestExtractClientFraudAnywhere(t *testing.T) {
	text := "Name: Jane\n" + "filler\n" + "extended fraud alert active\n"
	client := extractClient(splitLines(text), text, 1)
	if !client.FlaggedForFraud {
		t.Error("fraud token outside scan window not flagged")
	}
}
