package metrics

import (
	"testing"
	"time"
)

func TestRegistry_Search(t *testing.T) {
	reg, ts := setupRegistryWithData(t)

	tests := []struct {
		name            string
		metricName      string
		namespacePrefix []string
		start           time.Time
		end             time.Time
		want            int
	}{
		{"all metrics", "", nil, time.Time{}, time.Time{}, 8},
		{"exact name only", "queue", nil, time.Time{}, time.Time{}, 0},
		{"queue_depth all namespaces", "queue_depth", nil, time.Time{}, time.Time{}, 4},
		{"queue_depth probe only", "queue_depth", []string{"Autoscaler", "Probe"}, time.Time{}, time.Time{}, 3},
		{"namespace prefix Autoscaler", "", []string{"Autoscaler"}, time.Time{}, time.Time{}, 6},
		{"negative value included", "queue_depth", []string{"Autoscaler", "Probe"}, ts["ts3"], ts["ts3"], 1},
		{"time window exact bounds", "", nil, ts["ts2"], ts["ts3"], 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := reg.Search(tt.metricName, tt.namespacePrefix, tt.start, tt.end)
			if len(results) != tt.want {
				t.Fatalf("expected %d results, got %d", tt.want, len(results))
			}
		})
	}
}

func TestRegistry_Discover(t *testing.T) {
	reg, _ := setupRegistryWithData(t)

	tests := []struct {
		name      string
		unit      string
		mType     MetricType
		ns        []string
		wantCount int
	}{
		{"all", "", "", nil, 6},
		{"unit ms only", "ms", "", nil, 1},
		{"counter only", "", Counter, nil, 1},
		{"probe namespace only", "", "", []string{"Autoscaler", "Probe"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := reg.Discover("", "", tt.ns, tt.unit, tt.mType)
			if len(results) != tt.wantCount {
				t.Fatalf("expected %d results, got %d", tt.wantCount, len(results))
			}
		})
	}
}
