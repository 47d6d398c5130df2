package network

import "encoding/json"

// DecodeIncoming parses one client-to-server text frame. A schema
// mismatch is reported as a *CodecError per spec §7; the caller's
// policy is to log it and drop the frame, not tear down the connection.
func DecodeIncoming(addr string, raw []byte) (IncomingMessage, error) {
	var env IncomingEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return IncomingMessage{}, &CodecError{Addr: addr, Err: err}
	}
	return IncomingMessage{Sender: addr, RegisterInterest: env.RegisterInterest}, nil
}

// EncodeOutgoing marshals one server-to-client frame.
func EncodeOutgoing(msg OutgoingMessage) ([]byte, error) {
	return json.Marshal(msg)
}
