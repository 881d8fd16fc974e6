package indexes

type Region struct {
	Id        string `json:"id"`
	GeneCount int    `json:"geneCount"`
}

type Gene struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Region   string `json:"region"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Sequence string `json:"sequence"`
}

var MAPPING_FIELDS_KEYWORD_IG256 = map[string]interface{}{
	"keyword": map[string]interface{}{
		"type":         "keyword",
		"ignore_above": 256,
	},
}
var MAPPING_TEXT = map[string]interface{}{"type": "text", "fields": MAPPING_FIELDS_KEYWORD_IG256}
var MAPPING_LONG = map[string]interface{}{"type": "long"}

var GENES_INDEX_MAPPING = map[string]interface{}{
	"properties": map[string]interface{}{
		"id":       MAPPING_TEXT,
		"name":     MAPPING_TEXT,
		"region":   MAPPING_TEXT,
		"start":    MAPPING_LONG,
		"end":      MAPPING_LONG,
		"sequence": MAPPING_TEXT,
	},
}
