package dashboard

import "github.com/cogniquest/cogniquest/internal/store"

// historyLoadedMsg is sent when the attempt list has been read.
type historyLoadedMsg struct {
	Items []store.HistoryItem
	Err   error
}

// historyChangedMsg is sent after a delete or rename so the list reloads.
type historyChangedMsg struct {
	Err error
}
