package model

import "testing"

func TestLoadStatus_IsLoading(t *testing.T) {
	tests := []struct {
		status   LoadStatus
		expected bool
	}{
		{LoadStatusIdle, false},
		{LoadStatusLoading, true},
		{LoadStatus(""), false},
	}

	for _, test := range tests {
		result := test.status.IsLoading()
		if result != test.expected {
			t.Errorf("LoadStatus(%s).IsLoading() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestLoadStatus_String(t *testing.T) {
	status := LoadStatusLoading
	expected := "Loading"
	result := status.String()

	if result != expected {
		t.Errorf("LoadStatus.String() = %s, expected %s", result, expected)
	}
}

func TestSelectionMode_IsMultiple(t *testing.T) {
	tests := []struct {
		mode     SelectionMode
		expected bool
	}{
		{SelectionRowClick, false},
		{SelectionCheckbox, true},
	}

	for _, test := range tests {
		result := test.mode.IsMultiple()
		if result != test.expected {
			t.Errorf("SelectionMode(%s).IsMultiple() = %v, expected %v", test.mode, result, test.expected)
		}
	}
}
