package dto

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"movie-catalog-server/internal/model"
)

// FlexString 接受 JSON 字符串或数字，表单提交时按普通字符串绑定。
// 数字以原始文本保存，由业务层统一转换。
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// MovieInput 创建与更新共用的请求体。
// image 既可以是表单里的文件，也可以是这里的 URL 字符串，文件优先。
// 表单中 image 可能是文件字段，gin 的表单绑定无法把文件映射到字符串，所以由 handler 单独读取。
type MovieInput struct {
	Title    string     `form:"title" json:"title"`
	Director string     `form:"director" json:"director"`
	Year     FlexString `form:"year" json:"year"`
	Genre    string     `form:"genre" json:"genre"`
	Rating   FlexString `form:"rating" json:"rating"`
	Image    string     `form:"-" json:"image"`
}

// MissingRequired 报告创建时必填的五个字段是否有缺失或空白
func (in MovieInput) MissingRequired() bool {
	for _, v := range []string{in.Title, in.Director, in.Year.String(), in.Genre, in.Rating.String()} {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

type MovieResponse struct {
	ID        uint       `json:"id"`
	Title     string     `json:"title"`
	Director  string     `json:"director"`
	Year      int        `json:"year"`
	Genre     string     `json:"genre"`
	Rating    float64    `json:"rating"`
	Image     string     `json:"image"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func NewMovieResponse(m *model.Movie) MovieResponse {
	resp := MovieResponse{
		ID:       m.ID,
		Title:    m.Title,
		Director: m.Director,
		Year:     m.Year,
		Genre:    m.Genre,
		Rating:   m.Rating,
		Image:    m.Image,
	}
	if !m.CreatedAt.IsZero() {
		createdAt := m.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

func NewMovieResponses(movies []model.Movie) []MovieResponse {
	list := make([]MovieResponse, 0, len(movies))
	for i := range movies {
		list = append(list, NewMovieResponse(&movies[i]))
	}
	return list
}
