package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoreProcesses(t *testing.T) {
	request := ScheduleRequest{Processes: []Process{
		{ID: "A", ArrivalTime: 1, BurstTime: 2, Color: "#fff"},
		{ID: "  ", BurstTime: 3},
	}}

	processes := request.CoreProcesses()
	require.Len(t, processes, 2)
	assert.Equal(t, "A", processes[0].ID)
	assert.Equal(t, "#fff", processes[0].Color)
	assert.Equal(t, 0, processes[0].Index)
	assert.Equal(t, "P2", processes[1].ID)
	assert.Equal(t, 1, processes[1].Index)
}

func TestCoreProcessesNamesBlankRows(t *testing.T) {
	tests := []struct {
		name string
		rows []Process
		want []string
	}{
		{name: "by position", rows: []Process{{}, {ID: " A "}, {}}, want: []string{"P1", "A", "P3"}},
		{name: "skips explicit names", rows: []Process{{ID: "P2"}, {}}, want: []string{"P2", "P3"}},
		{name: "skips later explicit names", rows: []Process{{}, {ID: "P1"}, {ID: "P3"}}, want: []string{"P2", "P1", "P3"}},
		{name: "skips generated names", rows: []Process{{}, {ID: "P1"}, {}}, want: []string{"P2", "P1", "P3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processes := ScheduleRequest{Processes: tt.rows}.CoreProcesses()

			got := make([]string, 0, len(processes))
			for i, p := range processes {
				assert.Equal(t, i, p.Index)
				got = append(got, p.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
