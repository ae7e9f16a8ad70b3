package tui

import "strings"

func (m generatorModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(overlayBoxStyle.Render(renderBuildInfoWindow(m.buildInfo)))
	}

	var b strings.Builder

	if m.toast != "" {
		b.WriteString(toastStyle.Render(m.toast))
		b.WriteString("\n\n")
	}

	b.WriteString(titleStyle.Render("Password Generator"))
	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	b.WriteString(renderField("Master Password:", m.inputs[fieldPepper].View(), m.focus == fieldPepper))
	b.WriteString(renderField("Base Word:", m.inputs[fieldWord].View(), m.focus == fieldWord))

	if m.loading {
		b.WriteString("  Generating...\n\n")
	}
	if m.errMsg != "" {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	}
	if m.password != "" {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Generated Password:"))
		b.WriteString("\n  ")
		b.WriteString(passwordStyle.Render(m.password))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("  tab: next field • ctrl+y: copy • f1: about • esc/ctrl+c: quit"))

	return appStyle.Render(b.String())
}

func renderField(label, input string, focused bool) string {
	var b strings.Builder

	if focused {
		b.WriteString("> ")
	} else {
		b.WriteString("  ")
	}
	b.WriteString(labelStyle.Render(label))
	b.WriteString("\n  ")
	b.WriteString(input)
	b.WriteString("\n\n")

	return b.String()
}
