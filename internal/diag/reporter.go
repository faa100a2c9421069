package diag

// Reporter получает диагностики по мере того, как фазы их находят.
// *Bag реализует Reporter напрямую.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) { f(d) }
