// Package fuzztests houses Go fuzz harnesses for the dicer front end
// (source -> lexer -> grouping). They guard against panics, hangs and broken
// stream invariants on arbitrary inputs.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер и
// parser.Group, проверяя инварианты из internal/testkit.
//
// Не делает: генерацию корпусов, запись файлов.
package fuzztests
