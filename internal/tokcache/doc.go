// Package tokcache keeps lexed token streams keyed by source content hash.
//
// Снимок хранится в msgpack: вид токена, границы span, Value (если отличается
// от текста) и ошибки лексера. Text не сохраняется, он восстанавливается из
// содержимого файла, поэтому снимок переносится на любой FileID с тем же хэшем.
package tokcache
