package app

// MessageExpiredMsg is sent when a status message has been shown long enough
type MessageExpiredMsg struct {
	Seq int
}
