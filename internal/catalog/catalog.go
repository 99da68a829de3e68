// Package catalog holds the bundled offline city catalog: a handful of demo
// cities with hand-authored literary landmarks, used when no AI credential is
// configured or as a fallback when a provider call fails.
package catalog

import (
	"sort"
	"strings"

	"inkatlas/backend/internal/model"
)

var cities = map[string]model.City{
	"london": {
		Name: model.LocalizedText{EN: "London", ZH: "伦敦"},
		Lat:  51.5074,
		Lng:  -0.1278,
		Landmarks: []model.Landmark{
			{
				ID:           "l1",
				Name:         model.LocalizedText{EN: "221B Baker Street", ZH: "贝克街221B"},
				Lat:          51.5237,
				Lng:          -0.1585,
				BookTitle:    model.LocalizedText{EN: "Sherlock Holmes", ZH: "福尔摩斯探案集"},
				Author:       model.LocalizedText{EN: "Arthur Conan Doyle", ZH: "阿瑟·柯南·道尔"},
				Quote:        model.LocalizedText{EN: "The game is afoot.", ZH: "游戏开始了。"},
				TravelerNote: model.LocalizedText{EN: "Now a museum dedicated to the detective.", ZH: "现在是致力于这位大侦探的博物馆。"},
				CoverURL:     "https://picsum.photos/200/300?random=1",
			},
			{
				ID:           "l2",
				Name:         model.LocalizedText{EN: "The British Museum", ZH: "大英博物馆"},
				Lat:          51.5194,
				Lng:          -0.1270,
				BookTitle:    model.LocalizedText{EN: "Maurice", ZH: "莫里斯"},
				Author:       model.LocalizedText{EN: "E.M. Forster", ZH: "E.M. 福斯特"},
				Quote:        model.LocalizedText{EN: "You can't get away from tradition in England.", ZH: "在英国，你无法摆脱传统。"},
				TravelerNote: model.LocalizedText{EN: "The Reading Room is where many literary giants studied.", ZH: "阅览室曾是许多文学巨匠学习的地方。"},
				CoverURL:     "https://picsum.photos/200/300?random=2",
			},
		},
	},
	"florence": {
		Name: model.LocalizedText{EN: "Florence", ZH: "佛罗伦萨"},
		Lat:  43.7696,
		Lng:  11.2558,
		Landmarks: []model.Landmark{
			{
				ID:        "f1",
				Name:      model.LocalizedText{EN: "Casa di Dante", ZH: "但丁故居"},
				Lat:       43.7705,
				Lng:       11.2568,
				BookTitle: model.LocalizedText{EN: "The Divine Comedy", ZH: "神曲"},
				Author:    model.LocalizedText{EN: "Dante Alighieri", ZH: "但丁·阿利吉耶里"},
				Quote: model.LocalizedText{
					EN: "Midway upon the journey of our life I found myself within a forest dark.",
					ZH: "在人生的旅途过半时，我发现自己步入一片幽暗的树林，因为正确的道路已经模糊不清。",
				},
				TravelerNote: model.LocalizedText{
					EN: "Visit the narrow streets where the poet once glimpsed Beatrice.",
					ZH: "造访狭窄的小巷，寻找诗人曾凝望贝阿特丽切的身影。",
				},
				CoverURL: "https://picsum.photos/200/300?random=10",
			},
			{
				ID:        "f2",
				Name:      model.LocalizedText{EN: "Ponte alle Grazie", ZH: "恩宠桥"},
				Lat:       43.7663,
				Lng:       11.2582,
				BookTitle: model.LocalizedText{EN: "A Room with a View", ZH: "看得见风景的房间"},
				Author:    model.LocalizedText{EN: "E.M. Forster", ZH: "E.M. 福斯特"},
				Quote: model.LocalizedText{
					EN: "This is the Arno, this is the room with the view.",
					ZH: "这就是阿诺河，这就是那个有着如此惊人风景的房间。",
				},
				TravelerNote: model.LocalizedText{
					EN: "Look for the Tuscan sunlight that charmed Lucy.",
					ZH: "前往阿诺河边，寻找福斯特笔下那抹让露西心动的托斯卡纳阳光。",
				},
				CoverURL: "https://picsum.photos/200/300?random=11",
			},
		},
	},
	"venice": {
		Name: model.LocalizedText{EN: "Venice", ZH: "威尼斯"},
		Lat:  45.4408,
		Lng:  12.3155,
		Landmarks: []model.Landmark{
			{
				ID:        "v1",
				Name:      model.LocalizedText{EN: "Lido", ZH: "丽都岛"},
				Lat:       45.4168,
				Lng:       12.3734,
				BookTitle: model.LocalizedText{EN: "Death in Venice", ZH: "威尼斯之死"},
				Author:    model.LocalizedText{EN: "Thomas Mann", ZH: "托马斯·曼"},
				Quote: model.LocalizedText{
					EN: "He sat there... facing the sea... Venice, this flattering and suspect beauty.",
					ZH: "他坐在那里，那是一个有着玻璃屋顶的凉台，面对着大海……威尼斯，这诱人而又令人生疑的国家。",
				},
				TravelerNote: model.LocalizedText{
					EN: "Take the Vaporetto to the beach where the film festival is held.",
					ZH: "搭乘水上巴士前往丽都岛，在电影节举办地的沙滩上感受那份凄美的忧郁。",
				},
				CoverURL: "https://picsum.photos/200/300?random=12",
			},
		},
	},
	"rome": {
		Name: model.LocalizedText{EN: "Rome", ZH: "罗马"},
		Lat:  41.8902,
		Lng:  12.4922,
		Landmarks: []model.Landmark{
			{
				ID:        "r1",
				Name:      model.LocalizedText{EN: "Antico Caffè Greco", ZH: "古希腊咖啡馆"},
				Lat:       41.9059,
				Lng:       12.4813,
				BookTitle: model.LocalizedText{EN: "Italian Journey", ZH: "意大利游记"},
				Author:    model.LocalizedText{EN: "Johann Wolfgang von Goethe", ZH: "歌德"},
				Quote: model.LocalizedText{
					EN: "Yes, I have finally arrived at this capital of the world!",
					ZH: "是的，我终于到达了这个世界的首都！",
				},
				TravelerNote: model.LocalizedText{
					EN: "A haunt for Goethe, Byron and Keats on Via Condotti.",
					ZH: "去康多提街的古希腊咖啡馆，这里曾是歌德、拜伦和济慈最爱的聚集地。",
				},
				CoverURL: "https://picsum.photos/200/300?random=13",
			},
		},
	},
	"naples": {
		Name: model.LocalizedText{EN: "Naples", ZH: "那不勒斯"},
		Lat:  40.8518,
		Lng:  14.2681,
		Landmarks: []model.Landmark{
			{
				ID:        "n1",
				Name:      model.LocalizedText{EN: "Rione Luzzatti", ZH: "卢扎蒂区"},
				Lat:       40.8560,
				Lng:       14.2880,
				BookTitle: model.LocalizedText{EN: "My Brilliant Friend", ZH: "我的天才女友"},
				Author:    model.LocalizedText{EN: "Elena Ferrante", ZH: "埃莱娜·费兰特"},
				Quote: model.LocalizedText{
					EN: "In Naples, it felt like the whole city was trying to push you away and hold you tight.",
					ZH: "在那不勒斯，那种感觉就像是整个城市都在努力推开你，又在死死拽住你。",
				},
				TravelerNote: model.LocalizedText{
					EN: "Walk the paths of Lila and Elena's childhood in the old neighborhood.",
					ZH: "避开繁华大道，去老城区的平民区，寻找莉拉和埃莱娜童年奔跑的足迹。",
				},
				CoverURL: "https://picsum.photos/200/300?random=14",
			},
		},
	},
}

// Key normalizes a user-entered city name to a catalog key.
func Key(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// Lookup returns the catalog entry for a city name, matched
// case-insensitively. The returned entry's landmark slice is a copy so
// callers cannot mutate the catalog.
func Lookup(city string) (model.City, bool) {
	entry, ok := cities[Key(city)]
	if !ok {
		return model.City{}, false
	}
	landmarks := make([]model.Landmark, len(entry.Landmarks))
	copy(landmarks, entry.Landmarks)
	entry.Landmarks = landmarks
	return entry, true
}

// Keys returns all catalog keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(cities))
	for k := range cities {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
