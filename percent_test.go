package housing

import "testing"

func TestPercent_Strings(t *testing.T) {
	tests := []struct {
		p          Percent
		want       string
		wantSigned string
	}{
		{p: 10, want: "10.00%", wantSigned: "+10.00%"},
		{p: -3.456, want: "-3.46%", wantSigned: "-3.46%"},
		{p: 0, want: "0.00%", wantSigned: "-"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Percent(%v).String() = %q, want %q", float64(tt.p), got, tt.want)
		}
		if got := tt.p.SignedString(); got != tt.wantSigned {
			t.Errorf("Percent(%v).SignedString() = %q, want %q", float64(tt.p), got, tt.wantSigned)
		}
	}
}

func TestPercent_Equal(t *testing.T) {
	if !Percent(10).Equal(10.00005) {
		t.Error("Percent.Equal() must tolerate float computation noise")
	}
	if Percent(10).Equal(10.1) {
		t.Error("Percent.Equal() must reject a real difference")
	}
}
