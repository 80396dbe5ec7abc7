package config

import "strings"

// SecurityConfig содержит настройки защиты входящих запросов:
// разрешенные типы содержимого и потолок размера тела.
type SecurityConfig struct {
	AllowedContentTypes []string `yaml:"allowed_content_types" env:"USERS_ALLOWED_CONTENT_TYPES" env-default:"application/json,application/*+json"`
	MaxBodyBytes        int64    `yaml:"max_body_bytes" env:"USERS_MAX_BODY_BYTES" env-default:"1048576"`
}

// Allows сообщает, входит ли тип содержимого в список разрешенных.
// Параметры после ";" игнорируются; запись со звездочкой трактуется как
// шаблон префикс*суффикс (например application/*+json).
func (c *SecurityConfig) Allows(contentType string) bool {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	if mediaType == "" {
		return false
	}

	for _, allowed := range c.AllowedContentTypes {
		allowed = strings.ToLower(strings.TrimSpace(allowed))
		if star := strings.IndexByte(allowed, '*'); star >= 0 {
			prefix, suffix := allowed[:star], allowed[star+1:]
			if strings.HasPrefix(mediaType, prefix) && strings.HasSuffix(mediaType, suffix) {
				return true
			}
			continue
		}
		if mediaType == allowed {
			return true
		}
	}
	return false
}

// AllowedList возвращает список разрешенных типов одной строкой для
// сообщений об ошибках.
func (c *SecurityConfig) AllowedList() string {
	return strings.Join(c.AllowedContentTypes, ", ")
}
