package repository

import (
	"errors"
	"time"

	"careermate/db"
	"careermate/models"
)

// ErrDBNotInitialized 数据库连接尚未初始化
var ErrDBNotInitialized = errors.New("database is not initialized")

// SaveChatExchange 追加一条聊天记录，只插入，不更新不删除
func SaveChatExchange(userMessage, botResponse string, createdAt time.Time) error {
	if db.DB == nil {
		return ErrDBNotInitialized
	}
	_, err := db.DB.Exec(
		`INSERT INTO chats (user_message, bot_response, created_at) VALUES (?, ?, ?)`,
		userMessage, botResponse, createdAt,
	)
	return err
}

// RecentExchanges 按时间倒序返回最近的聊天记录
func RecentExchanges(limit int) ([]models.ChatExchange, error) {
	if db.DB == nil {
		return nil, ErrDBNotInitialized
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.DB.Query(
		`SELECT id, user_message, bot_response, created_at FROM chats ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.ChatExchange, 0, limit)
	for rows.Next() {
		var e models.ChatExchange
		if err := rows.Scan(&e.ID, &e.UserMessage, &e.BotResponse, &e.CreatedAt); err == nil {
			out = append(out, e)
		}
	}
	return out, nil
}

// CountExchangesBetween 统计时间区间[from, to)内的聊天记录数
func CountExchangesBetween(from, to time.Time) (int, error) {
	if db.DB == nil {
		return 0, ErrDBNotInitialized
	}

	var count int
	err := db.DB.QueryRow(
		`SELECT COUNT(*) FROM chats WHERE created_at >= ? AND created_at < ?`,
		from, to,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
