package config

type config struct {
	Mysql     mysql     `yaml:"mysql" mapstructure:"mysql"`
	Redis     redis     `yaml:"redis" mapstructure:"redis"`
	Snowflake snowflake `yaml:"snowflake" mapstructure:"snowflake"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
}

type snowflake struct {
	WorkerId     int64 `yaml:"worker_id" mapstructure:"worker_id"`
	DatacenterId int64 `yaml:"datacenter_id" mapstructure:"datacenter_id"`
}
