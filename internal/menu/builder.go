package menu

import (
	"github.com/sing-config/sing-config/internal/i18n"
)

// Build composes the menu bar for locale using layout and validates the result.
// The returned tree is never partially built: any invalid node fails the whole build.
func Build(layout Layout, locale i18n.Locale) (*Tree, error) {
	text := i18n.For(locale)

	tree := &Tree{Menus: layout.Compose(locale, &text)}
	if err := validateTree(tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// BuildTray composes the tray menu for locale. Tray entries carry no accelerators.
func BuildTray(locale i18n.Locale) (*TrayTree, error) {
	text := i18n.For(locale)

	tray := &TrayTree{Items: []Node{
		item(IDTrayShow, text.TrayShow, ""),
		item(IDTrayHide, text.TrayHide, ""),
		Separator{},
		item(IDTrayQuit, text.TrayQuit, ""),
	}}
	if err := validateTray(tray); err != nil {
		return nil, err
	}
	return tray, nil
}

// AppMenu builds the application-identity submenu shown first on macOS.
func AppMenu(text *i18n.Text) *Submenu {
	return submenu(text.AppName,
		item(IDAppAbout, text.About, ""),
		Separator{},
		item(IDAppQuit, text.Quit, AccelQuit),
	)
}

// FileMenu builds the File submenu. When withQuit is set a separator and the Quit entry
// close the menu.
func FileMenu(text *i18n.Text, withQuit bool) *Submenu {
	recent := submenu(text.OpenRecent,
		item(IDFileClearRecent, text.ClearRecent, ""),
	)

	menu := submenu(text.File,
		item(IDFileNew, text.New, AccelNew),
		item(IDFileOpen, text.Open, AccelOpen),
		recent,
		Separator{},
		item(IDFileSave, text.Save, AccelSave),
		item(IDFileSaveAs, text.SaveAs, AccelSaveAs),
	)
	if withQuit {
		menu.Children = append(menu.Children,
			Separator{},
			item(IDAppQuit, text.Quit, AccelQuit),
		)
	}
	return menu
}

// EditMenu builds the Edit submenu.
func EditMenu(text *i18n.Text) *Submenu {
	return submenu(text.Edit,
		item(IDEditUndo, text.Undo, AccelUndo),
		item(IDEditRedo, text.Redo, AccelRedo),
		Separator{},
		item(IDEditCut, text.Cut, AccelCut),
		item(IDEditCopy, text.Copy, AccelCopy),
		item(IDEditPaste, text.Paste, AccelPaste),
		Separator{},
		item(IDEditFind, text.Find, AccelFind),
		item(IDEditReplace, text.Replace, AccelReplace),
		Separator{},
		item(IDEditFormat, text.Format, AccelFormat),
	)
}

// ViewMenu builds the View submenu. Exactly one language entry is checked: the one matching
// locale.
func ViewMenu(text *i18n.Text, locale i18n.Locale) *Submenu {
	zh := locale.IsChinese()

	language := submenu(text.Language,
		checkItem(IDViewLanguageZh, text.LanguageChinese, zh),
		checkItem(IDViewLanguageEn, text.LanguageEnglish, !zh),
	)

	return submenu(text.View,
		item(IDViewFormMode, text.FormMode, AccelFormMode),
		item(IDViewJSONMode, text.JSONMode, AccelJSONMode),
		Separator{},
		item(IDViewToggleSidebar, text.ToggleSidebar, AccelToggleSidebar),
		Separator{},
		language,
	)
}

// ToolsMenu builds the Tools submenu.
func ToolsMenu(text *i18n.Text) *Submenu {
	return submenu(text.Tools,
		item(IDToolsRunCheck, text.RunCheck, AccelRunCheck),
		item(IDToolsRunValidation, text.RunValidation, AccelRunValidation),
		Separator{},
		item(IDToolsWizard, text.Wizard, ""),
		item(IDToolsTemplates, text.Templates, ""),
	)
}

// SettingsMenu builds the Settings submenu.
func SettingsMenu(text *i18n.Text) *Submenu {
	return submenu(text.Settings,
		item(IDSettingsPreferences, text.Preferences, AccelPreferences),
	)
}

// HelpMenu builds the Help submenu.
func HelpMenu(text *i18n.Text) *Submenu {
	return submenu(text.Help,
		item(IDHelpShortcuts, text.Shortcuts, AccelShortcuts),
		item(IDHelpDocumentation, text.Documentation, ""),
		Separator{},
		item(IDHelpAbout, text.About, ""),
	)
}
