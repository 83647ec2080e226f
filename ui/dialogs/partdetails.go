// Package dialogs provides composite dialogs for the damage viewer.
package dialogs

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"bodymap/internal/inspect"
	"bodymap/internal/palette"
	"bodymap/internal/taxonomy"
)

// ShowPartDetails presents the recorded damage data for one part: condition,
// severity, inspector notes, and photo references.
func ShowPartDetails(key taxonomy.PartKey, rec inspect.Record, pal *palette.Palette, lang taxonomy.Language, win fyne.Window) {
	title := key.Label(lang)

	data, recorded := rec[key]
	var rows []fyne.CanvasObject

	if key.IsWheel() && recorded && data.TireStatus != "" {
		rows = append(rows, detailRow(tireLabel(lang), pal.ResolveTire(data.TireStatus).Label(lang)))
	}

	condition := taxonomy.ConditionNotInspected
	if recorded {
		condition = data.Condition
	}
	rows = append(rows, detailRow(conditionLabel(lang), pal.Describe(condition, data.Severity, lang)))

	if recorded && data.Notes != "" {
		notes := widget.NewLabel(data.Notes)
		notes.Wrapping = fyne.TextWrapWord
		rows = append(rows, widget.NewLabelWithStyle(notesLabel(lang), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), notes)
	}
	if recorded && len(data.Photos) > 0 {
		rows = append(rows, detailRow(photosLabel(lang), strings.Join(data.Photos, "\n")))
	}

	content := container.NewVBox(rows...)
	d := dialog.NewCustom(title, closeLabel(lang), content, win)
	d.Resize(fyne.NewSize(340, 260))
	d.Show()
}

func detailRow(name, value string) fyne.CanvasObject {
	v := widget.NewLabel(value)
	v.Wrapping = fyne.TextWrapWord
	return container.NewVBox(
		widget.NewLabelWithStyle(name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		v,
	)
}

func conditionLabel(lang taxonomy.Language) string {
	if lang == taxonomy.LangRU {
		return "Состояние"
	}
	return "Condition"
}

func tireLabel(lang taxonomy.Language) string {
	if lang == taxonomy.LangRU {
		return "Шина"
	}
	return "Tire"
}

func notesLabel(lang taxonomy.Language) string {
	if lang == taxonomy.LangRU {
		return "Заметки"
	}
	return "Notes"
}

func photosLabel(lang taxonomy.Language) string {
	if lang == taxonomy.LangRU {
		return "Фото"
	}
	return "Photos"
}

func closeLabel(lang taxonomy.Language) string {
	if lang == taxonomy.LangRU {
		return "Закрыть"
	}
	return "Close"
}
