package config

// Filled in at link time.
var (
	build_time  string
	commit_hash string
)

type Version struct {
	Name      string `yaml:"name" json:"Name"`
	Version   string `yaml:"version" json:"Version"`
	Commit    string `yaml:"commit,omitempty" json:"Commit,omitempty"`
	BuildTime string `yaml:"build_time,omitempty" json:"BuildTime,omitempty"`
}

func GetVersion() *Version {
	return &Version{
		Name:      "analog",
		Version:   "0.2.0",
		Commit:    commit_hash,
		BuildTime: build_time,
	}
}
