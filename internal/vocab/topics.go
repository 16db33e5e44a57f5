// Package vocab holds the built-in TOEIC vocabulary topics.
package vocab

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/verte-zerg/vocabtype/internal/model"
)

type w = model.VocabularyWord

var topics = []model.VocabularyTopic{
	{
		ID:             1,
		Title:          "CONTRACTS",
		LocalizedTitle: "Hợp đồng",
		Words: []w{
			{Source: "abide by", Translation: "tuân theo"},
			{Source: "agreement", Translation: "hợp đồng, sự thỏa thuận"},
			{Source: "assurance", Translation: "sự bảo đảm"},
			{Source: "cancellation", Translation: "sự hủy bỏ"},
			{Source: "determine", Translation: "xác định, quyết định"},
			{Source: "engage", Translation: "tham gia, cam kết"},
			{Source: "establish", Translation: "thiết lập, thành lập"},
			{Source: "obligate", Translation: "bắt buộc"},
			{Source: "party", Translation: "bên (trong hợp đồng)"},
			{Source: "provision", Translation: "điều khoản"},
			{Source: "resolve", Translation: "giải quyết"},
			{Source: "specify", Translation: "chỉ rõ, ghi rõ"},
			{Source: "rely on", Translation: "tin vào"},
		},
	},
	{
		ID:             2,
		Title:          "MARKETING",
		LocalizedTitle: "Tiếp thị",
		Words: []w{
			{Source: "attract", Translation: "thu hút"},
			{Source: "compare", Translation: "so sánh"},
			{Source: "competition", Translation: "sự cạnh tranh"},
			{Source: "consume", Translation: "tiêu thụ"},
			{Source: "convince", Translation: "thuyết phục"},
			{Source: "currently", Translation: "hiện nay"},
			{Source: "fad", Translation: "mốt nhất thời"},
			{Source: "inspiration", Translation: "nguồn cảm hứng"},
			{Source: "market", Translation: "thị trường"},
			{Source: "persuasion", Translation: "sự thuyết phục"},
			{Source: "productive", Translation: "có năng suất"},
			{Source: "satisfaction", Translation: "sự hài lòng"},
			{Source: "as soon as", Translation: "ngay khi"},
		},
	},
	{
		ID:             3,
		Title:          "WARRANTIES",
		LocalizedTitle: "Bảo hành",
		Words: []w{
			{Source: "characteristic", Translation: "đặc điểm"},
			{Source: "consequence", Translation: "hậu quả"},
			{Source: "consider", Translation: "cân nhắc, xem xét"},
			{Source: "cover", Translation: "bao gồm, chi trả"},
			{Source: "expire", Translation: "hết hạn"},
			{Source: "frequently", Translation: "thường xuyên"},
			{Source: "imply", Translation: "ngụ ý"},
			{Source: "promise", Translation: "lời hứa"},
			{Source: "protect", Translation: "bảo vệ"},
			{Source: "reputation", Translation: "danh tiếng"},
			{Source: "require", Translation: "yêu cầu"},
			{Source: "variety", Translation: "sự đa dạng"},
			{Source: "in charge of", Translation: "chịu trách nhiệm về"},
		},
	},
	{
		ID:             4,
		Title:          "BUSINESS PLANNING",
		LocalizedTitle: "Lập kế hoạch kinh doanh",
		Words: []w{
			{Source: "address", Translation: "giải quyết, đề cập"},
			{Source: "avoid", Translation: "tránh"},
			{Source: "demonstrate", Translation: "chứng minh"},
			{Source: "develop", Translation: "phát triển"},
			{Source: "evaluate", Translation: "đánh giá"},
			{Source: "gather", Translation: "thu thập"},
			{Source: "offer", Translation: "đề nghị, cung cấp"},
			{Source: "primarily", Translation: "chủ yếu"},
			{Source: "risk", Translation: "rủi ro"},
			{Source: "strategy", Translation: "chiến lược"},
			{Source: "strong", Translation: "mạnh mẽ"},
			{Source: "substitution", Translation: "sự thay thế"},
			{Source: "carry out", Translation: "tiến hành"},
		},
	},
	{
		ID:             5,
		Title:          "CONFERENCES",
		LocalizedTitle: "Hội nghị",
		Words: []w{
			{Source: "accommodate", Translation: "cung cấp chỗ ở, đáp ứng"},
			{Source: "arrangement", Translation: "sự sắp xếp"},
			{Source: "association", Translation: "hiệp hội"},
			{Source: "attend", Translation: "tham dự"},
			{Source: "get in touch", Translation: "liên lạc"},
			{Source: "hold", Translation: "tổ chức"},
			{Source: "location", Translation: "địa điểm"},
			{Source: "overcrowded", Translation: "quá đông"},
			{Source: "register", Translation: "đăng ký"},
			{Source: "select", Translation: "lựa chọn"},
			{Source: "session", Translation: "phiên họp"},
			{Source: "take part in", Translation: "tham gia vào"},
		},
	},
	{
		ID:             6,
		Title:          "COMPUTERS AND THE INTERNET",
		LocalizedTitle: "Máy tính và Internet",
		Words: []w{
			{Source: "access", Translation: "truy cập"},
			{Source: "allocate", Translation: "phân bổ"},
			{Source: "compatible", Translation: "tương thích"},
			{Source: "delete", Translation: "xóa"},
			{Source: "display", Translation: "hiển thị"},
			{Source: "duplicate", Translation: "sao chép"},
			{Source: "failure", Translation: "sự hỏng hóc"},
			{Source: "figure out", Translation: "tìm ra, hiểu ra"},
			{Source: "ignore", Translation: "bỏ qua"},
			{Source: "search", Translation: "tìm kiếm"},
			{Source: "shut down", Translation: "tắt máy"},
			{Source: "warning", Translation: "cảnh báo"},
		},
	},
	{
		ID:             7,
		Title:          "OFFICE TECHNOLOGY",
		LocalizedTitle: "Công nghệ văn phòng",
		Words: []w{
			{Source: "affordable", Translation: "giá cả phải chăng"},
			{Source: "as needed", Translation: "khi cần thiết"},
			{Source: "be in charge of", Translation: "phụ trách"},
			{Source: "capacity", Translation: "công suất, sức chứa"},
			{Source: "durable", Translation: "bền"},
			{Source: "initiative", Translation: "sáng kiến"},
			{Source: "physical", Translation: "thuộc về vật chất"},
			{Source: "provider", Translation: "nhà cung cấp"},
			{Source: "recur", Translation: "tái diễn"},
			{Source: "reduction", Translation: "sự giảm bớt"},
			{Source: "stay on top of", Translation: "nắm bắt kịp thời"},
			{Source: "stock", Translation: "hàng tồn kho"},
		},
	},
	{
		ID:             8,
		Title:          "OFFICE PROCEDURES",
		LocalizedTitle: "Thủ tục văn phòng",
		Words: []w{
			{Source: "appreciation", Translation: "sự đánh giá cao"},
			{Source: "be made of", Translation: "được làm từ"},
			{Source: "bring in", Translation: "tuyển dụng, mang lại"},
			{Source: "casually", Translation: "một cách thoải mái"},
			{Source: "code", Translation: "quy tắc"},
			{Source: "expose", Translation: "phơi bày, tiếp xúc"},
			{Source: "glimpse", Translation: "cái nhìn thoáng qua"},
			{Source: "made of", Translation: "làm bằng"},
			{Source: "out of", Translation: "hết, không còn"},
			{Source: "outdated", Translation: "lỗi thời"},
			{Source: "practice", Translation: "thông lệ"},
			{Source: "reinforce", Translation: "củng cố"},
			{Source: "verbal", Translation: "bằng lời nói"},
		},
	},
}

// Topics returns the built-in topics in display order.
func Topics() []model.VocabularyTopic {
	out := make([]model.VocabularyTopic, len(topics))
	for i, t := range topics {
		out[i] = cloneTopic(t)
	}
	return out
}

// Lookup finds a topic by id.
func Lookup(id int) (model.VocabularyTopic, bool) {
	for _, t := range topics {
		if t.ID == id {
			return cloneTopic(t), true
		}
	}
	return model.VocabularyTopic{}, false
}

// Validate checks that ids are unique and every topic has typeable words.
func Validate(list []model.VocabularyTopic) error {
	seen := make(map[int]struct{}, len(list))
	for _, t := range list {
		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("duplicate topic id %d", t.ID)
		}
		seen[t.ID] = struct{}{}
		if len(t.Words) == 0 {
			return fmt.Errorf("topic %d (%s) has no words", t.ID, t.Title)
		}
		for i, word := range t.Words {
			if strings.TrimSpace(word.Source) == "" {
				return fmt.Errorf("topic %d word %d has empty source", t.ID, i)
			}
			if word.Source != strings.TrimSpace(word.Source) || strings.Contains(word.Source, "  ") {
				return fmt.Errorf("topic %d word %q has irregular spacing", t.ID, word.Source)
			}
		}
	}
	return nil
}

// DisplayTitle renders an upper-case title in capitalized form, "BUSINESS PLANNING" -> "Business Planning".
func DisplayTitle(title string) string {
	parts := strings.Fields(strings.ToLower(title))
	for i, p := range parts {
		runes := []rune(p)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func cloneTopic(t model.VocabularyTopic) model.VocabularyTopic {
	t.Words = append([]model.VocabularyWord(nil), t.Words...)
	return t
}
