package quest

// Quest definition limits
const (
	QuestNameMaxLength = 100
)

// Log messages
const (
	LogMsgQuestCreated   = "Quest created"
	LogMsgQuestAccepted  = "Quest accepted"
	LogMsgQuestProgress  = "Quest progress updated"
	LogMsgQuestCompleted = "Quest completed"
)
