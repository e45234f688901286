package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPotentialDraws(t *testing.T) {
	tests := []struct {
		name  string
		hole  string
		board string
		want  []string
	}{
		{
			name:  "four to a flush",
			hole:  "As Ks",
			board: "Qs 2s 7h",
			want:  []string{"Flush draw (9 outs)"},
		},
		{
			name:  "open ended straight draw",
			hole:  "9h 8d",
			board: "7c 6s 2h",
			want:  []string{"Straight draw (8 outs)"},
		},
		{
			name:  "gutshot counts as a straight draw",
			hole:  "Ah Kd",
			board: "Qc Jh 3s",
			want:  []string{"Straight draw (8 outs)"},
		},
		{
			name:  "wheel draw reported alongside the straight draw",
			hole:  "Ac 2d",
			board: "3h 4s Kd",
			want:  []string{"Straight draw (8 outs)", "Wheel draw (8 outs)"},
		},
		{
			name:  "made wheel still flags wheel and neighbouring window",
			hole:  "Ac 2d",
			board: "3h 4s 5d",
			want:  []string{"Straight draw (8 outs)", "Wheel draw (8 outs)"},
		},
		{
			name:  "made flush is not a draw",
			hole:  "As Ks",
			board: "Qs 2s 7s",
			want:  nil,
		},
		{
			name:  "disconnected board has no draws",
			hole:  "2c 7d",
			board: "9h Jc Ks",
			want:  nil,
		},
		{
			name:  "too few cards",
			hole:  "As Ks",
			board: "Qs 2s",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draws := PotentialDraws(mustCards(t, tt.hole), mustCards(t, tt.board))

			var got []string
			for _, d := range draws {
				got = append(got, d.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
