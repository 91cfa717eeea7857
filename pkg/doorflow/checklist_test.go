package doorflow

import "testing"

func TestCompletionPolicy(t *testing.T) {
	tests := []struct {
		name    string
		policy  CompletionPolicy
		summary ChecksSummary
		wantErr bool
	}{
		{"permissive allows unchecked items", CompletionPolicy{RequireAllChecks: false}, ChecksSummary{Total: 10, Completed: 3}, false},
		{"permissive allows complete list", CompletionPolicy{RequireAllChecks: false}, ChecksSummary{Total: 10, Completed: 10}, false},
		{"strict blocks unchecked items", CompletionPolicy{RequireAllChecks: true}, ChecksSummary{Total: 10, Completed: 9}, true},
		{"strict allows complete list", CompletionPolicy{RequireAllChecks: true}, ChecksSummary{Total: 10, Completed: 10}, false},
		{"strict allows empty checklist", CompletionPolicy{RequireAllChecks: true}, ChecksSummary{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.ValidateCompletion(tt.summary)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCompletion() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
