package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "assessment",
			objectType:  "result",
			identifier:  "01H",
			paramsKey:   nil,
			expectedKey: "careercompass:assessment:result:01H",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "assessment",
			objectType:  "result",
			identifier:  "01H",
			paramsKey:   []string{},
			expectedKey: "careercompass:assessment:result:01H",
		},
		{
			name:        "with one paramsKey",
			serviceName: "recommendation",
			objectType:  "streams",
			identifier:  "compare",
			paramsKey:   []string{"Science"},
			expectedKey: "careercompass:recommendation:streams:compare:Science",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "recommendation",
			objectType:  "streams",
			identifier:  "compare",
			paramsKey:   []string{"Science", "Commerce"},
			expectedKey: "careercompass:recommendation:streams:compare:Science_Commerce",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}
