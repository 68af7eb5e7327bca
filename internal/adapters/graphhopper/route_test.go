package graphhopper

import (
	"context"
	"errors"
	"net/http"
	"route-planner-service/internal/domain"
	"strings"
	"sync/atomic"
	"testing"
)

var (
	boston    = domain.Coordinates{Lat: 42.3554334, Lon: -71.060511}
	cambridge = domain.Coordinates{Lat: 42.3750997, Lon: -71.1056157}
)

func TestRoute(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/route" {
			t.Errorf("path = %q, want /route", r.URL.Path)
		}
		q := r.URL.Query()
		points := q["point"]
		if len(points) != 2 || points[0] != "42.3554334,-71.060511" || points[1] != "42.3750997,-71.1056157" {
			t.Errorf("points = %v", points)
		}
		if q.Get("vehicle") != "bike" || q.Get("points_encoded") != "false" || q.Get("instructions") != "true" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}

		w.Write([]byte(`{"paths":[{
			"distance":16000,"time":1800000,
			"instructions":[
				{"text":"Continue onto Cambridge Street","distance":12000.5,"time":1300000},
				{"text":"Arrive at destination","distance":0,"time":0}
			],
			"points":{"type":"LineString","coordinates":[[-71.060511,42.3554334],[-71.1056157,42.3750997,12.5]]}
		}]}`))
	})

	leg, err := c.Route(context.Background(), boston, cambridge, domain.VehicleBike)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if leg.DistanceMeters != 16000 || leg.TimeMillis != 1_800_000 {
		t.Errorf("leg = %v m / %v ms", leg.DistanceMeters, leg.TimeMillis)
	}
	if len(leg.Instructions) != 2 || leg.Instructions[0].Text != "Continue onto Cambridge Street" {
		t.Errorf("instructions = %+v", leg.Instructions)
	}
	if len(leg.Points) != 2 || leg.Points[0] != boston || leg.Points[1] != cambridge {
		t.Errorf("points = %+v, want lat/lon swapped", leg.Points)
	}
}

func TestRouteFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    *domain.Error
		detail  string
	}{
		{
			name: "missing paths",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"info":{}}`))
			},
			want: domain.ErrProtocol,
		},
		{
			name: "empty paths",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"paths":[]}`))
			},
			want: domain.ErrUpstream,
		},
		{
			name: "status with hints",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"message":"Connection between locations not found","hints":[{"message":"Connection between locations not found","details":"ConnectionNotFoundException"},{"message":"Point 1 is too far from any road"}]}`))
			},
			want:   domain.ErrUpstream,
			detail: "Point 1 is too far from any road",
		},
		{
			name: "short coordinate",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"paths":[{"distance":1,"time":1,"points":{"coordinates":[[1]]}}]}`))
			},
			want: domain.ErrProtocol,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, tt.handler)

			_, err := c.Route(context.Background(), boston, cambridge, domain.VehicleCar)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want kind %s", err, tt.want.Kind)
			}
			if tt.detail != "" && !strings.Contains(err.Error(), tt.detail) {
				t.Errorf("err = %q, want it to contain %q", err.Error(), tt.detail)
			}
		})
	}
}

func TestRouteRejectsAirplane(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := c.Route(context.Background(), boston, cambridge, domain.VehicleAirplane)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}
	if atomic.LoadInt32(calls) != 0 {
		t.Errorf("airplane issued %d requests", *calls)
	}
}
