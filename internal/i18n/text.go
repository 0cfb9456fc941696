package i18n

// AppName is shown as the title of the application menu. It is not translated.
const AppName = "sing-config"

// Text holds every user-visible label of the native shell for one locale.
type Text struct {
	AppName string

	// File menu
	File        string
	New         string
	Open        string
	OpenRecent  string
	ClearRecent string
	Save        string
	SaveAs      string
	Quit        string

	// Edit menu
	Edit    string
	Undo    string
	Redo    string
	Cut     string
	Copy    string
	Paste   string
	Find    string
	Replace string
	Format  string

	// View menu
	View            string
	FormMode        string
	JSONMode        string
	ToggleSidebar   string
	Language        string
	LanguageChinese string
	LanguageEnglish string

	// Tools menu
	Tools         string
	RunCheck      string
	RunValidation string
	Wizard        string
	Templates     string

	// Settings menu
	Settings    string
	Preferences string

	// Help menu
	Help          string
	Shortcuts     string
	Documentation string
	About         string

	// Tray menu
	TrayShow string
	TrayHide string
	TrayQuit string

	// Notification shown the first time the window is closed to the tray
	StillRunningTitle string
	StillRunningBody  string
}

var chineseText = Text{
	AppName: AppName,

	File:        "文件",
	New:         "新建",
	Open:        "打开",
	OpenRecent:  "打开最近",
	ClearRecent: "清除列表",
	Save:        "保存",
	SaveAs:      "另存为",
	Quit:        "退出",

	Edit:    "编辑",
	Undo:    "撤销",
	Redo:    "重做",
	Cut:     "剪切",
	Copy:    "复制",
	Paste:   "粘贴",
	Find:    "查找",
	Replace: "替换",
	Format:  "格式化",

	View:            "视图",
	FormMode:        "表单模式",
	JSONMode:        "JSON 模式",
	ToggleSidebar:   "显示/隐藏侧边栏",
	Language:        "语言",
	LanguageChinese: "中文",
	LanguageEnglish: "English",

	Tools:         "工具",
	RunCheck:      "运行检查",
	RunValidation: "运行验证",
	Wizard:        "向导",
	Templates:     "模板库",

	Settings:    "设置",
	Preferences: "偏好设置",

	Help:          "帮助",
	Shortcuts:     "快捷键",
	Documentation: "文档",
	About:         "关于",

	TrayShow: "显示",
	TrayHide: "隐藏",
	TrayQuit: "退出",

	StillRunningTitle: "sing-config 仍在运行",
	StillRunningBody:  "窗口已最小化到系统托盘，点击托盘图标可重新打开。",
}

var englishText = Text{
	AppName: AppName,

	File:        "File",
	New:         "New",
	Open:        "Open",
	OpenRecent:  "Open Recent",
	ClearRecent: "Clear List",
	Save:        "Save",
	SaveAs:      "Save As",
	Quit:        "Quit",

	Edit:    "Edit",
	Undo:    "Undo",
	Redo:    "Redo",
	Cut:     "Cut",
	Copy:    "Copy",
	Paste:   "Paste",
	Find:    "Find",
	Replace: "Replace",
	Format:  "Format",

	View:            "View",
	FormMode:        "Form Mode",
	JSONMode:        "JSON Mode",
	ToggleSidebar:   "Toggle Sidebar",
	Language:        "Language",
	LanguageChinese: "中文",
	LanguageEnglish: "English",

	Tools:         "Tools",
	RunCheck:      "Run Check",
	RunValidation: "Run Validation",
	Wizard:        "Wizard",
	Templates:     "Template Library",

	Settings:    "Settings",
	Preferences: "Preferences",

	Help:          "Help",
	Shortcuts:     "Keyboard Shortcuts",
	Documentation: "Documentation",
	About:         "About",

	TrayShow: "Show",
	TrayHide: "Hide",
	TrayQuit: "Quit",

	StillRunningTitle: "sing-config is still running",
	StillRunningBody:  "The window was minimized to the system tray. Click the tray icon to open it again.",
}

// For returns the label table for locale. Unrecognized tags get the English table.
// The returned value is a copy; callers may not mutate the shared tables.
func For(locale Locale) Text {
	if locale.IsChinese() {
		return chineseText
	}
	return englishText
}
