package model

// Subscription is the channel/subscriber edge. One row per pair, backed by
// the unique index. Self-subscription is not blocked here; the service
// layer owns that policy.
type Subscription struct {
	SubscriptionId int64  `json:"subscription_id" gorm:"primaryKey"`
	ChannelId      int64  `json:"channel_id" gorm:"uniqueIndex:idx_channel_subscriber"`
	SubscriberId   int64  `json:"subscriber_id" gorm:"uniqueIndex:idx_channel_subscriber"`
	CreatedAt      string `json:"created_at"`
	DeletedAt      string `json:"deleted_at"`
}
