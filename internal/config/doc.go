// Package config decodes the dicer TOML configuration: lexer limits,
// diagnostic output, tracing and driver settings.
//
// Значения по умолчанию лежат во встроенном default.toml; переданный текст
// накладывается поверх, проверяются только ключи, которые он действительно задаёт.
// Файлы пакет не читает: байты приносит вызывающий.
package config
