package menu

// Identifiers carried by menu and tray events. Other layers of the application match on
// these strings, so they must never change.
const (
	IDAppAbout = "app_about"
	IDAppQuit  = "app_quit"

	IDFileNew         = "file_new"
	IDFileOpen        = "file_open"
	IDFileClearRecent = "file_clear_recent"
	IDFileSave        = "file_save"
	IDFileSaveAs      = "file_save_as"

	IDEditUndo    = "edit_undo"
	IDEditRedo    = "edit_redo"
	IDEditCut     = "edit_cut"
	IDEditCopy    = "edit_copy"
	IDEditPaste   = "edit_paste"
	IDEditFind    = "edit_find"
	IDEditReplace = "edit_replace"
	IDEditFormat  = "edit_format"

	IDViewFormMode      = "view_form_mode"
	IDViewJSONMode      = "view_json_mode"
	IDViewToggleSidebar = "view_toggle_sidebar"
	IDViewLanguageZh    = "view_language_zh"
	IDViewLanguageEn    = "view_language_en"

	IDToolsRunCheck      = "tools_run_check"
	IDToolsRunValidation = "tools_run_validation"
	IDToolsWizard        = "tools_wizard"
	IDToolsTemplates     = "tools_templates"

	IDSettingsPreferences = "settings_preferences"

	IDHelpShortcuts     = "help_shortcuts"
	IDHelpDocumentation = "help_documentation"
	IDHelpAbout         = "help_about"

	IDTrayShow = "tray_show"
	IDTrayHide = "tray_hide"
	IDTrayQuit = "tray_quit"
)

// Accelerators, in the syntax accepted by the Wails key parser.
const (
	AccelNew           = "CmdOrCtrl+N"
	AccelOpen          = "CmdOrCtrl+O"
	AccelSave          = "CmdOrCtrl+S"
	AccelSaveAs        = "CmdOrCtrl+Shift+S"
	AccelQuit          = "CmdOrCtrl+Q"
	AccelUndo          = "CmdOrCtrl+Z"
	AccelRedo          = "CmdOrCtrl+Shift+Z"
	AccelCut           = "CmdOrCtrl+X"
	AccelCopy          = "CmdOrCtrl+C"
	AccelPaste         = "CmdOrCtrl+V"
	AccelFind          = "CmdOrCtrl+F"
	AccelReplace       = "CmdOrCtrl+H"
	AccelFormat        = "CmdOrCtrl+Shift+F"
	AccelFormMode      = "CmdOrCtrl+1"
	AccelJSONMode      = "CmdOrCtrl+2"
	AccelToggleSidebar = "CmdOrCtrl+B"
	AccelRunCheck      = "CmdOrCtrl+R"
	AccelRunValidation = "CmdOrCtrl+Shift+V"
	AccelPreferences   = "CmdOrCtrl+,"
	AccelShortcuts     = "CmdOrCtrl+Shift+?"
)
