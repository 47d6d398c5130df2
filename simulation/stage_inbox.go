package simulation

// StageInbox drains the Inbox, creating a bare Socket-only agent for
// any sender seen for the first time and recording the latest
// RegisterInterest for every sender that sent one (spec §4.7).
func StageInbox(w *World, res *Resources) {
	for _, msg := range res.Inbox {
		if _, known := res.socketsByAddr[msg.Sender]; !known {
			e := w.Entities.Create()
			w.Sockets.Set(e, Socket{Addr: msg.Sender})
			res.socketsByAddr[msg.Sender] = e
		}
		if msg.RegisterInterest != nil {
			res.RegionRegistry[msg.Sender] = msg.RegisterInterest.ToAABB()
		}
	}
	res.Inbox = res.Inbox[:0]
}
