package models

// Message is a single chat message inside a conversation.
type Message struct {
	BaseModel

	ConversationID string        `gorm:"type:uuid;not null;index" json:"conversationId"`
	Conversation   *Conversation `gorm:"foreignKey:ConversationID" json:"-"`

	SenderID string `gorm:"not null" json:"senderId"`
	Sender   *User  `gorm:"foreignKey:SenderID" json:"sender,omitempty"`

	Text string `gorm:"type:text;not null" json:"text"`
}

func (Message) TableName() string {
	return "messages"
}
