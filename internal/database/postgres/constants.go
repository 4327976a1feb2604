package postgres

// Settings keys in admin_settings
const (
	SettingKeyAdminPIN   = "admin_pin"
	SettingKeyRewardPool = "reward_pool_amount"
)

// Error message constants
const (
	ErrMsgInsertDistribution = "failed to insert distribution record"
	ErrMsgQueryDistributions = "failed to query distribution history"
	ErrMsgPurgeDistributions = "failed to purge expired distributions"
	ErrMsgQuerySetting       = "failed to query setting"
	ErrMsgQueryLeaderboard   = "failed to query leaderboard"
)
