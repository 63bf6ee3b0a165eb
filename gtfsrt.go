package main

import (
	"net/http"
	"time"

	gtfs "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/rs/zerolog/log"
	"google.golang.org/protobuf/proto"
)

const stationVehicleID = "ISS"

// buildVehicleFeed renders the snapshot as a GTFS-realtime full dataset with
// the station as the only vehicle. No fix yet means no entities.
func buildVehicleFeed(snap Snapshot, now time.Time) *gtfs.FeedMessage {
	feed := &gtfs.FeedMessage{
		Header: &gtfs.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Incrementality:      gtfs.FeedHeader_FULL_DATASET.Enum(),
			Timestamp:           proto.Uint64(uint64(now.Unix())),
		},
	}
	if !snap.HasPosition {
		return feed
	}
	feed.Entity = append(feed.Entity, &gtfs.FeedEntity{
		Id: proto.String(stationVehicleID),
		Vehicle: &gtfs.VehiclePosition{
			Vehicle: &gtfs.VehicleDescriptor{
				Id:    proto.String(stationVehicleID),
				Label: proto.String("International Space Station"),
			},
			Position: &gtfs.Position{
				Latitude:  proto.Float32(float32(snap.Position.Lat)),
				Longitude: proto.Float32(float32(snap.Position.Lon)),
			},
			Timestamp: proto.Uint64(unixSeconds(snap.Position.Timestamp)),
		},
	})
	return feed
}

func unixSeconds(ts int64) uint64 {
	if ts < 0 {
		return 0
	}
	return uint64(ts)
}

func handleGtfsRt(current func() Snapshot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := proto.Marshal(buildVehicleFeed(current(), time.Now()))
		if err != nil {
			log.Error().Err(err).Msg("gtfs-rt encode error")
			http.Error(w, "encode error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/x-protobuf")
		_, _ = w.Write(body)
	}
}
