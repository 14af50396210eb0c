package ingest

import "strings"

// productNameMaster maps POS product codes to canonical display names.
// The POS truncates names inconsistently across terminals, so the
// master table wins over the name column whenever a code is present.
var productNameMaster = map[string]string{
	"1001": "ハムチーズサンドイッチ",
	"1002": "たまごサンドイッチ",
	"1003": "ツナサンドイッチ",
	"1004": "カツサンド",
	"1005": "BLTサンドイッチ",
	"1006": "野菜バゲットサンド",
	"2001": "ブレンドコーヒー",
	"2002": "カフェラテ",
	"2003": "紅茶",
	"2004": "オレンジジュース",
	"2005": "アイスコーヒー",
	"2006": "生ビール",
	"2007": "グラスワイン",
	"3001": "本日のケーキ",
	"3002": "クッキー詰め合わせ",
	"3003": "季節のスープ",
}

// CanonicalProductName resolves a product code to its master-table
// name, falling back to the name the row itself carries.
func CanonicalProductName(code, rowName string) string {
	if name, ok := productNameMaster[code]; ok {
		return name
	}
	return rowName
}

// productBucket identifies one of the three reporting buckets.
type productBucket int

const (
	bucketSandwiches productBucket = iota
	bucketDrinks
	bucketOther
)

// bucketKeywords is evaluated in order; the first bucket whose keyword
// list matches the (lowercased) product name wins, and names matching
// nothing land in the other bucket.
var bucketKeywords = []struct {
	bucket   productBucket
	keywords []string
}{
	{bucketSandwiches, []string{"サンド", "バゲット", "トースト", "sandwich"}},
	{bucketDrinks, []string{"コーヒー", "ラテ", "紅茶", "ジュース", "ビール", "ワイン", "ドリンク", "coffee"}},
}

// classifyProduct assigns a product name to its reporting bucket.
func classifyProduct(name string) productBucket {
	lower := strings.ToLower(name)
	for _, group := range bucketKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				return group.bucket
			}
		}
	}
	return bucketOther
}
