package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTemplateInfo(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantNickname string
		wantAccount  string
		wantSerial   string
	}{
		{
			name:         "complete template",
			text:         "In-game nickname: Alice\nAccount name: acc_alice\nYour MTA serial: A1B2C3D4E5F60718",
			wantNickname: "Alice",
			wantAccount:  "acc_alice",
			wantSerial:   "A1B2C3D4E5F60718",
		},
		{
			name:         "copy-paste colon on next line",
			text:         "In-game nickname:\n: Alice\nAccount name:\n: acc_alice",
			wantNickname: "Alice",
			wantAccount:  "acc_alice",
		},
		{
			name:         "missing account still yields nickname",
			text:         "In-game nickname: Alice\nYour MTA serial: ABCDEF012345",
			wantNickname: "Alice",
			wantSerial:   "ABCDEF012345",
		},
		{
			name:         "lowercase labels accepted",
			text:         "in-game nickname: Alice\naccount name: acc_alice",
			wantNickname: "Alice",
			wantAccount:  "acc_alice",
		},
		{
			name: "lowercase serial rejected",
			text: "Your MTA serial: abcdef",
		},
		{
			name: "empty input",
			text: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := ExtractTemplateInfo(tt.text)
			assert.Equal(t, tt.wantNickname, fields.Nickname)
			assert.Equal(t, tt.wantAccount, fields.AccountName)
			assert.Equal(t, tt.wantSerial, fields.MTASerial)
		})
	}
}
