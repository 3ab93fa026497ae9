package domain

import "time"

// Post представляет пост в системе. Пароль хранится в виде bcrypt-хеша
// и никогда не попадает в JSON.
type Post struct {
	PostID    int64     `json:"postId" gorm:"column:post_id;primaryKey;autoIncrement"`
	Nickname  string    `json:"nickname" gorm:"type:varchar(255);not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	Title     string    `json:"title" gorm:"type:varchar(255);not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null;autoUpdateTime"`
}

// TableName фиксирует имя таблицы.
func (Post) TableName() string { return "posts" }

// PostSummary - элемент списка постов, без пароля и содержимого.
type PostSummary struct {
	PostID    int64     `json:"postId"`
	Nickname  string    `json:"nickname"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostDetail - пост целиком, но без пароля.
type PostDetail struct {
	PostID    int64     `json:"postId"`
	Nickname  string    `json:"nickname"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary возвращает представление поста для списка.
func (p *Post) Summary() PostSummary {
	return PostSummary{
		PostID:    p.PostID,
		Nickname:  p.Nickname,
		Title:     p.Title,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// Detail возвращает детальное представление поста.
func (p *Post) Detail() PostDetail {
	return PostDetail{
		PostID:    p.PostID,
		Nickname:  p.Nickname,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
