package models

type Config struct {
	Debug          bool   `envconfig:"SEQCOMPARE_DEBUG"`
	SemVer         string `envconfig:"SEQCOMPARE_SEMVER"`
	ServiceContact string `envconfig:"SEQCOMPARE_SERVICE_CONTACT"`

	Api struct {
		Port                    string `envconfig:"SEQCOMPARE_API_INTERNAL_PORT"`
		MethodsPath             string `envconfig:"SEQCOMPARE_API_METHODS_PATH"`
		ScratchPath             string `envconfig:"SEQCOMPARE_API_SCRATCH_PATH"`
		RegionCacheRefreshHours int    `envconfig:"SEQCOMPARE_API_REGION_CACHE_REFRESH_HOURS"`
	}
	Elasticsearch struct {
		Url      string `envconfig:"SEQCOMPARE_ES_URL"`
		Username string `envconfig:"SEQCOMPARE_ES_USERNAME"`
		Password string `envconfig:"SEQCOMPARE_ES_PASSWORD"`
	}
}
