package simulation

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"flocksim/geometry"
	"flocksim/network"
)

func TestStageInboxCreatesSocketOnlyOnce(t *testing.T) {
	Convey("Given two messages from the same new sender", t, func() {
		w := NewWorld()
		res := NewResources(NewFrameClock(fixedEpoch))
		res.Inbox = []network.IncomingMessage{
			{Sender: "peerA:1"},
			{Sender: "peerA:1"},
		}

		StageInbox(w, res)

		Convey("Exactly one Socket-backed agent is created", func() {
			So(w.Sockets.Len(), ShouldEqual, 1)
		})

		Convey("The Inbox is drained", func() {
			So(len(res.Inbox), ShouldEqual, 0)
		})
	})
}

func TestRegionRegistryLastWriterWins(t *testing.T) {
	Convey("Given peer A registering two different regions in sequence", t, func() {
		w := NewWorld()
		res := NewResources(NewFrameClock(fixedEpoch))

		aabb1 := &network.RegisterInterest{XMin: 0, XMax: 10, YMin: 0, YMax: 10}
		aabb2 := &network.RegisterInterest{XMin: 5, XMax: 15, YMin: 5, YMax: 15}

		res.Inbox = []network.IncomingMessage{
			{Sender: "peerA:1", RegisterInterest: aabb1},
		}
		StageInbox(w, res)

		res.Inbox = []network.IncomingMessage{
			{Sender: "peerA:1", RegisterInterest: aabb2},
		}
		StageInbox(w, res)

		Convey("Only the most recent region is observable", func() {
			So(res.RegionRegistry["peerA:1"], ShouldResemble, aabb2.ToAABB())
			So(res.RegionRegistry["peerA:1"], ShouldNotResemble, geometry.AABB{})
		})

		Convey("Only one Socket-backed agent was ever created for the peer", func() {
			So(w.Sockets.Len(), ShouldEqual, 1)
		})
	})
}
