package policy

import "blogCPT/internal/models"

// CanMutate решает, может ли вызывающий изменить или удалить пост.
// Пустой callerID означает анонимного пользователя. Правило одно:
// изменять пост может только его автор. Используется и в update, и в delete.
func CanMutate(callerID string, post *models.Post) bool {
	if callerID == "" || post == nil {
		return false
	}

	return callerID == post.AuthorID
}
