package network

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDecodeIncoming(t *testing.T) {
	Convey("Given a RegisterInterest frame", t, func() {
		raw := []byte(`{"RegisterInterest":{"x_min":1.5,"x_max":2.5,"y_min":-1,"y_max":10}}`)

		Convey("It decodes with the sender attached", func() {
			msg, err := DecodeIncoming("127.0.0.1:1234", raw)
			So(err, ShouldBeNil)
			So(msg.Sender, ShouldEqual, "127.0.0.1:1234")
			So(msg.RegisterInterest, ShouldNotBeNil)
			So(msg.RegisterInterest.XMin, ShouldEqual, float32(1.5))
			So(msg.RegisterInterest.YMax, ShouldEqual, float32(10))
		})

		Convey("Round-tripping through encode and decode is bit-for-bit", func() {
			msg, err := DecodeIncoming("addr", raw)
			So(err, ShouldBeNil)
			reencoded, err := json.Marshal(IncomingEnvelope{RegisterInterest: msg.RegisterInterest})
			So(err, ShouldBeNil)
			roundTripped, err := DecodeIncoming("addr", reencoded)
			So(err, ShouldBeNil)
			So(*roundTripped.RegisterInterest, ShouldResemble, *msg.RegisterInterest)
		})
	})

	Convey("Given a malformed frame", t, func() {
		raw := []byte(`not json`)

		Convey("It reports a CodecError", func() {
			_, err := DecodeIncoming("addr", raw)
			So(err, ShouldNotBeNil)
			var codecErr *CodecError
			So(err, ShouldHaveSameTypeAs, codecErr)
		})
	})
}

func TestEncodeOutgoing(t *testing.T) {
	Convey("Given an outgoing frame with one agent state", t, func() {
		msg := OutgoingMessage{AgentStates: []AgentState{
			{Position: [2]float32{1.25, -3.5}, Heading: 0.5},
		}}

		Convey("Encoding then decoding preserves position and heading to f32 precision", func() {
			raw, err := EncodeOutgoing(msg)
			So(err, ShouldBeNil)

			var decoded OutgoingMessage
			err = json.Unmarshal(raw, &decoded)
			So(err, ShouldBeNil)
			So(decoded, ShouldResemble, msg)
		})

		Convey("The wire shape uses the documented field names", func() {
			raw, err := EncodeOutgoing(msg)
			So(err, ShouldBeNil)
			var generic map[string]interface{}
			So(json.Unmarshal(raw, &generic), ShouldBeNil)
			So(generic, ShouldContainKey, "agent_states")
		})
	})
}
