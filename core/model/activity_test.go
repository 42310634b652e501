package model

import "testing"

func TestActivity_Validate(t *testing.T) {
	tests := []struct {
		name    string
		act     Activity
		wantErr bool
	}{
		{"valid", Activity{ID: 1, Value: 10, Duration: 1, OpenTime: 8, CloseTime: 10}, false},
		{"zero value ok", Activity{ID: 1, Duration: 1, OpenTime: 8, CloseTime: 10}, false},
		{"closed window", Activity{ID: 1, Value: 1, Duration: 1, OpenTime: 10, CloseTime: 10}, true},
		{"inverted window", Activity{ID: 1, Value: 1, Duration: 1, OpenTime: 12, CloseTime: 8}, true},
		{"zero duration", Activity{ID: 1, Value: 1, OpenTime: 8, CloseTime: 10}, true},
		{"negative duration", Activity{ID: 1, Value: 1, Duration: -1, OpenTime: 8, CloseTime: 10}, true},
		{"negative value", Activity{ID: 1, Value: -1, Duration: 1, OpenTime: 8, CloseTime: 10}, true},
		// Oversized duration is a filtering concern, never a validation error.
		{"duration exceeds window", Activity{ID: 1, Value: 1, Duration: 5, OpenTime: 8, CloseTime: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.act.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestActivity_Schedulable(t *testing.T) {
	fits := Activity{Duration: 2, OpenTime: 8, CloseTime: 10}
	if !fits.Schedulable() {
		t.Errorf("duration equal to window must be schedulable")
	}
	oversized := Activity{Duration: 5, OpenTime: 8, CloseTime: 10}
	if oversized.Schedulable() {
		t.Errorf("duration beyond window must not be schedulable")
	}
}

func TestTransportMode_Known(t *testing.T) {
	for _, m := range Modes() {
		if !m.Known() {
			t.Errorf("mode %q must be known", m)
		}
	}
	if TransportMode("teleport").Known() {
		t.Errorf("unsupported mode must not be known")
	}
}
