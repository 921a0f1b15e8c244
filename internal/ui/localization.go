package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle = "app_title"
	KeyFile     = "file"
	KeyHelp     = "help"
	KeyLanguage = "language"
	KeySettings = "settings"
	KeyQuit     = "quit"
	KeyClose    = "close"

	KeySearch            = "search"
	KeySearchPlaceholder = "search_placeholder"

	KeyColumnTitle       = "column_title"
	KeyColumnChannel     = "column_channel"
	KeyColumnDate        = "column_date"
	KeyColumnDescription = "column_description"

	KeyOpenSelected  = "open_selected"
	KeyRefreshVideos = "refresh_videos"
	KeyExportResults = "export_results"

	KeyMenuLoadCache     = "menu_load_cache"
	KeyMenuRefresh       = "menu_refresh"
	KeyMenuExportCurrent = "menu_export_current"
	KeyMenuExportAll     = "menu_export_all"
	KeyMenuClearCache    = "menu_clear_cache"
	KeyMenuShortcuts     = "menu_shortcuts"
	KeyMenuHowTo         = "menu_how_to"
	KeyMenuAbout         = "menu_about"

	KeyDetailsHeading            = "details_heading"
	KeyDetailsTitle              = "details_title"
	KeyDetailsChannel            = "details_channel"
	KeyDetailsDate               = "details_date"
	KeyDetailsURL                = "details_url"
	KeyDetailsDescription        = "details_description"
	KeyDetailsPlaceholder        = "details_placeholder"
	KeyDetailsDescriptionPending = "details_description_pending"
	KeyNoDescription             = "no_description"

	KeyStatusNoVideos      = "status_no_videos"
	KeyStatusShowingAll    = "status_showing_all"
	KeyStatusShowingSome   = "status_showing_some"
	KeyStatusLoading       = "status_loading"
	KeyStatusLoadingCount  = "status_loading_count"
	KeyStatusLoadedRemote  = "status_loaded_remote"
	KeyStatusLoadedCache   = "status_loaded_cache"
	KeyStatusRefreshFailed = "status_refresh_failed"

	KeyCacheLoadedTitle   = "cache_loaded_title"
	KeyCacheLoadedMessage = "cache_loaded_message"
	KeyCacheMissingTitle  = "cache_missing_title"
	KeyCacheMissing       = "cache_missing"
	KeyCacheCorrupt       = "cache_corrupt"
	KeyCacheSaveFailed    = "cache_save_failed"
	KeyClearCacheTitle    = "clear_cache_title"
	KeyClearCacheConfirm  = "clear_cache_confirm"
	KeyCacheCleared       = "cache_cleared"
	KeyNoCacheToClear     = "no_cache_to_clear"

	KeyExportCompleteTitle = "export_complete_title"
	KeyExportResultsDone   = "export_results_done"
	KeyExportAllDone       = "export_all_done"
	KeyNothingToExport     = "nothing_to_export"
	KeyShowInFolder        = "show_in_folder"
	KeyErrorOpeningFile    = "error_opening_file"
	KeyErrorOpeningURL     = "error_opening_url"

	KeySelectVideoFirst  = "select_video_first"
	KeyRefreshInProgress = "refresh_in_progress"
	KeyWelcomeTitle      = "welcome_title"
	KeyWelcomeMessage    = "welcome_message"
	KeyLoadNow           = "load_now"
	KeyLater             = "later"
	KeyWarning           = "warning"

	KeyCacheFile          = "cache_file"
	KeyClientSecretFile   = "client_secret_file"
	KeyTokenFile          = "token_file"
	KeyExportDirectory    = "export_directory"
	KeyExportFormat       = "export_format"
	KeySearchDebounce     = "search_debounce"
	KeyFilesSection       = "files_section"
	KeyExportSection      = "export_section"
	KeyInterfaceSection   = "interface_section"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeySettingsSaved      = "settings_saved"
	KeyRestartForLanguage = "restart_for_language"

	KeyShortcutsText = "shortcuts_text"
	KeyHowToText     = "how_to_text"
	KeyAboutText     = "about_text"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Textf formats the localized text for key with args
func (l *Localization) Textf(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle: "YouTube Liked Videos Searcher",
		KeyFile:     "File",
		KeyHelp:     "Help",
		KeyLanguage: "Language",
		KeySettings: "Settings",
		KeyQuit:     "Quit",
		KeyClose:    "Close",

		KeySearch:            "Search",
		KeySearchPlaceholder: "Search titles, channels and descriptions",

		KeyColumnTitle:       "Title",
		KeyColumnChannel:     "Channel",
		KeyColumnDate:        "Date Liked",
		KeyColumnDescription: "Description",

		KeyOpenSelected:  "Open Selected Video",
		KeyRefreshVideos: "Refresh Videos",
		KeyExportResults: "Export Results",

		KeyMenuLoadCache:     "Load Videos from Cache",
		KeyMenuRefresh:       "Refresh Videos from YouTube",
		KeyMenuExportCurrent: "Export Current Results...",
		KeyMenuExportAll:     "Export All Videos...",
		KeyMenuClearCache:    "Clear Cache",
		KeyMenuShortcuts:     "Keyboard Shortcuts",
		KeyMenuHowTo:         "How to Use",
		KeyMenuAbout:         "About",

		KeyDetailsHeading:            "Video Details",
		KeyDetailsTitle:              "Title:",
		KeyDetailsChannel:            "Channel:",
		KeyDetailsDate:               "Date:",
		KeyDetailsURL:                "URL:",
		KeyDetailsDescription:        "Description:",
		KeyDetailsPlaceholder:        "Select a video to view details",
		KeyDetailsDescriptionPending: "Video description will appear here when you select a video from the list above.",
		KeyNoDescription:             "No description available.",

		KeyStatusNoVideos:      "No videos loaded",
		KeyStatusShowingAll:    "Showing all %d videos",
		KeyStatusShowingSome:   "Showing %d of %d videos",
		KeyStatusLoading:       "Loading liked videos...",
		KeyStatusLoadingCount:  "Loading... %d videos loaded",
		KeyStatusLoadedRemote:  "Loaded %d liked videos",
		KeyStatusLoadedCache:   "Loaded %d videos from cache",
		KeyStatusRefreshFailed: "Refresh failed, showing the previous list",

		KeyCacheLoadedTitle:   "Cache Loaded",
		KeyCacheLoadedMessage: "Successfully loaded %d videos from cache.",
		KeyCacheMissingTitle:  "Cache Not Found",
		KeyCacheMissing:       "No cache file found. Please authenticate and load videos from YouTube first.",
		KeyCacheCorrupt:       "The local cache could not be read and was ignored.",
		KeyCacheSaveFailed:    "Videos were loaded, but the cache could not be saved: %s",
		KeyClearCacheTitle:    "Clear Cache",
		KeyClearCacheConfirm:  "Are you sure you want to clear the cache?\n\nThis will delete the locally stored video data. You'll need to reload from YouTube next time.",
		KeyCacheCleared:       "Cache file deleted successfully.",
		KeyNoCacheToClear:     "No cache file found to clear.",

		KeyExportCompleteTitle: "Export Complete",
		KeyExportResultsDone:   "%d videos exported to %s",
		KeyExportAllDone:       "All %d liked videos exported to %s",
		KeyNothingToExport:     "No videos to export. Please load videos first.",
		KeyShowInFolder:        "Show in Folder",
		KeyErrorOpeningFile:    "Error opening file",
		KeyErrorOpeningURL:     "Error opening link",

		KeySelectVideoFirst:  "Please select a video first.",
		KeyRefreshInProgress: "Videos are already being loaded.",
		KeyWelcomeTitle:      "Welcome",
		KeyWelcomeMessage:    "No saved videos were found on this computer.\n\nSign in with your Google account to load your liked videos from YouTube. The first load can take a few minutes.",
		KeyLoadNow:           "Load Now",
		KeyLater:             "Later",
		KeyWarning:           "Warning",

		KeyCacheFile:          "Cache File",
		KeyClientSecretFile:   "OAuth Client Secret File",
		KeyTokenFile:          "Token File",
		KeyExportDirectory:    "Export Directory",
		KeyExportFormat:       "Export Format",
		KeySearchDebounce:     "Search Delay (ms)",
		KeyFilesSection:       "Files",
		KeyExportSection:      "Export",
		KeyInterfaceSection:   "Interface",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyRestartForLanguage: "Some texts change after a restart.",

		KeyShortcutsText: `Main Functions:
  Ctrl+Q          Quit application
  Ctrl+R          Refresh videos from YouTube
  Ctrl+E          Export current search results
  F1              Show help

Navigation:
  Select a row    Show video details
  Type in search  Real-time search

Tips:
  • Click column headers to sort
  • Use search to filter, then sort results
  • The details pane shows full video information`,

		KeyHowToText: `Getting Started:
1. Put your OAuth client secret file where Settings points to
2. Click 'Refresh Videos' and sign in to your Google account
3. Wait for videos to load (may take a few minutes)
4. Start searching and exploring!

Features:
• Real-time search through titles, channels and descriptions
• Sort by any column (click headers)
• Details pane shows full video information
• Local caching for faster subsequent loads
• Export search results or all videos

Troubleshooting:
• If videos won't load, check your internet connection
• If authentication fails, delete the token file and sign in again
• For API quota issues, wait 24 hours for the quota reset`,

		KeyAboutText: `A desktop application to search and browse your YouTube liked videos.

Privacy:
Only your liked videos are read (read-only access) and all data is stored locally on your computer. No data is sent to third parties.

Requirements:
• Google Cloud project with the YouTube Data API enabled
• OAuth 2.0 desktop client credentials
• Internet connection for loading videos`,
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle: "Поиск по понравившимся видео YouTube",
		KeyFile:     "Файл",
		KeyHelp:     "Справка",
		KeyLanguage: "Язык",
		KeySettings: "Настройки",
		KeyQuit:     "Выход",
		KeyClose:    "Закрыть",

		KeySearch:            "Найти",
		KeySearchPlaceholder: "Поиск по названиям, каналам и описаниям",

		KeyColumnTitle:       "Название",
		KeyColumnChannel:     "Канал",
		KeyColumnDate:        "Дата",
		KeyColumnDescription: "Описание",

		KeyOpenSelected:  "Открыть видео",
		KeyRefreshVideos: "Обновить видео",
		KeyExportResults: "Экспорт результатов",

		KeyMenuLoadCache:     "Загрузить из кэша",
		KeyMenuRefresh:       "Обновить с YouTube",
		KeyMenuExportCurrent: "Экспорт текущих результатов...",
		KeyMenuExportAll:     "Экспорт всех видео...",
		KeyMenuClearCache:    "Очистить кэш",
		KeyMenuShortcuts:     "Горячие клавиши",
		KeyMenuHowTo:         "Как пользоваться",
		KeyMenuAbout:         "О программе",

		KeyDetailsHeading:            "Подробности",
		KeyDetailsTitle:              "Название:",
		KeyDetailsChannel:            "Канал:",
		KeyDetailsDate:               "Дата:",
		KeyDetailsURL:                "Ссылка:",
		KeyDetailsDescription:        "Описание:",
		KeyDetailsPlaceholder:        "Выберите видео, чтобы увидеть подробности",
		KeyDetailsDescriptionPending: "Здесь появится описание выбранного видео.",
		KeyNoDescription:             "Описание отсутствует.",

		KeyStatusNoVideos:      "Видео не загружены",
		KeyStatusShowingAll:    "Показаны все видео: %d",
		KeyStatusShowingSome:   "Показано %d из %d видео",
		KeyStatusLoading:       "Загрузка понравившихся видео...",
		KeyStatusLoadingCount:  "Загрузка... загружено видео: %d",
		KeyStatusLoadedRemote:  "Загружено понравившихся видео: %d",
		KeyStatusLoadedCache:   "Из кэша загружено видео: %d",
		KeyStatusRefreshFailed: "Обновление не удалось, показан прежний список",

		KeyCacheLoadedTitle:   "Кэш загружен",
		KeyCacheLoadedMessage: "Из кэша загружено видео: %d.",
		KeyCacheMissingTitle:  "Кэш не найден",
		KeyCacheMissing:       "Файл кэша не найден. Сначала войдите и загрузите видео с YouTube.",
		KeyCacheCorrupt:       "Локальный кэш не удалось прочитать, он пропущен.",
		KeyCacheSaveFailed:    "Видео загружены, но кэш сохранить не удалось: %s",
		KeyClearCacheTitle:    "Очистка кэша",
		KeyClearCacheConfirm:  "Очистить кэш?\n\nЛокально сохранённые данные будут удалены. В следующий раз видео придётся загрузить с YouTube.",
		KeyCacheCleared:       "Файл кэша удалён.",
		KeyNoCacheToClear:     "Файл кэша не найден.",

		KeyExportCompleteTitle: "Экспорт завершён",
		KeyExportResultsDone:   "Экспортировано видео: %d, файл %s",
		KeyExportAllDone:       "Все понравившиеся видео (%d) экспортированы в %s",
		KeyNothingToExport:     "Нет видео для экспорта. Сначала загрузите видео.",
		KeyShowInFolder:        "Показать в папке",
		KeyErrorOpeningFile:    "Ошибка открытия файла",
		KeyErrorOpeningURL:     "Ошибка открытия ссылки",

		KeySelectVideoFirst:  "Сначала выберите видео.",
		KeyRefreshInProgress: "Видео уже загружаются.",
		KeyWelcomeTitle:      "Добро пожаловать",
		KeyWelcomeMessage:    "Сохранённые видео не найдены.\n\nВойдите в аккаунт Google, чтобы загрузить понравившиеся видео. Первая загрузка может занять несколько минут.",
		KeyLoadNow:           "Загрузить",
		KeyLater:             "Позже",
		KeyWarning:           "Внимание",

		KeyCacheFile:          "Файл кэша",
		KeyClientSecretFile:   "Файл OAuth client secret",
		KeyTokenFile:          "Файл токена",
		KeyExportDirectory:    "Папка экспорта",
		KeyExportFormat:       "Формат экспорта",
		KeySearchDebounce:     "Задержка поиска (мс)",
		KeyFilesSection:       "Файлы",
		KeyExportSection:      "Экспорт",
		KeyInterfaceSection:   "Интерфейс",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyRestartForLanguage: "Часть текстов изменится после перезапуска.",

		KeyShortcutsText: `Основные функции:
  Ctrl+Q          Выход
  Ctrl+R          Обновить видео с YouTube
  Ctrl+E          Экспорт текущих результатов
  F1              Справка

Навигация:
  Выбор строки    Подробности о видео
  Ввод в поиске   Поиск на лету

Советы:
  • Нажмите на заголовок столбца для сортировки
  • Сначала отфильтруйте, затем сортируйте`,

		KeyHowToText: `Начало работы:
1. Положите файл OAuth client secret туда, куда указывают Настройки
2. Нажмите «Обновить видео» и войдите в аккаунт Google
3. Дождитесь загрузки (может занять несколько минут)
4. Ищите и изучайте!

Проблемы:
• Если видео не загружаются, проверьте подключение к интернету
• Если вход не удался, удалите файл токена и войдите снова
• При превышении квоты API подождите 24 часа`,

		KeyAboutText: `Приложение для поиска по понравившимся видео YouTube.

Конфиденциальность:
Приложение только читает список понравившихся видео и хранит данные локально. Данные не передаются третьим лицам.`,
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle: "Buscador de Vídeos Curtidos do YouTube",
		KeyFile:     "Arquivo",
		KeyHelp:     "Ajuda",
		KeyLanguage: "Idioma",
		KeySettings: "Configurações",
		KeyQuit:     "Sair",
		KeyClose:    "Fechar",

		KeySearch:            "Buscar",
		KeySearchPlaceholder: "Buscar em títulos, canais e descrições",

		KeyColumnTitle:       "Título",
		KeyColumnChannel:     "Canal",
		KeyColumnDate:        "Data",
		KeyColumnDescription: "Descrição",

		KeyOpenSelected:  "Abrir Vídeo Selecionado",
		KeyRefreshVideos: "Atualizar Vídeos",
		KeyExportResults: "Exportar Resultados",

		KeyMenuLoadCache:     "Carregar do Cache",
		KeyMenuRefresh:       "Atualizar do YouTube",
		KeyMenuExportCurrent: "Exportar Resultados Atuais...",
		KeyMenuExportAll:     "Exportar Todos os Vídeos...",
		KeyMenuClearCache:    "Limpar Cache",
		KeyMenuShortcuts:     "Atalhos de Teclado",
		KeyMenuHowTo:         "Como Usar",
		KeyMenuAbout:         "Sobre",

		KeyDetailsHeading:            "Detalhes do Vídeo",
		KeyDetailsTitle:              "Título:",
		KeyDetailsChannel:            "Canal:",
		KeyDetailsDate:               "Data:",
		KeyDetailsURL:                "URL:",
		KeyDetailsDescription:        "Descrição:",
		KeyDetailsPlaceholder:        "Selecione um vídeo para ver os detalhes",
		KeyDetailsDescriptionPending: "A descrição do vídeo selecionado aparecerá aqui.",
		KeyNoDescription:             "Nenhuma descrição disponível.",

		KeyStatusNoVideos:      "Nenhum vídeo carregado",
		KeyStatusShowingAll:    "Mostrando todos os %d vídeos",
		KeyStatusShowingSome:   "Mostrando %d de %d vídeos",
		KeyStatusLoading:       "Carregando vídeos curtidos...",
		KeyStatusLoadingCount:  "Carregando... %d vídeos carregados",
		KeyStatusLoadedRemote:  "%d vídeos curtidos carregados",
		KeyStatusLoadedCache:   "%d vídeos carregados do cache",
		KeyStatusRefreshFailed: "Falha na atualização, mostrando a lista anterior",

		KeyCacheLoadedTitle:   "Cache Carregado",
		KeyCacheLoadedMessage: "%d vídeos carregados do cache.",
		KeyCacheMissingTitle:  "Cache Não Encontrado",
		KeyCacheMissing:       "Nenhum arquivo de cache encontrado. Entre e carregue os vídeos do YouTube primeiro.",
		KeyCacheCorrupt:       "O cache local não pôde ser lido e foi ignorado.",
		KeyCacheSaveFailed:    "Os vídeos foram carregados, mas o cache não pôde ser salvo: %s",
		KeyClearCacheTitle:    "Limpar Cache",
		KeyClearCacheConfirm:  "Tem certeza de que deseja limpar o cache?\n\nOs dados armazenados localmente serão excluídos. Será preciso recarregar do YouTube na próxima vez.",
		KeyCacheCleared:       "Arquivo de cache excluído.",
		KeyNoCacheToClear:     "Nenhum arquivo de cache para limpar.",

		KeyExportCompleteTitle: "Exportação Concluída",
		KeyExportResultsDone:   "%d vídeos exportados para %s",
		KeyExportAllDone:       "Todos os %d vídeos curtidos exportados para %s",
		KeyNothingToExport:     "Nenhum vídeo para exportar. Carregue os vídeos primeiro.",
		KeyShowInFolder:        "Mostrar na Pasta",
		KeyErrorOpeningFile:    "Erro ao abrir arquivo",
		KeyErrorOpeningURL:     "Erro ao abrir link",

		KeySelectVideoFirst:  "Selecione um vídeo primeiro.",
		KeyRefreshInProgress: "Os vídeos já estão sendo carregados.",
		KeyWelcomeTitle:      "Bem-vindo",
		KeyWelcomeMessage:    "Nenhum vídeo salvo foi encontrado.\n\nEntre com sua conta Google para carregar seus vídeos curtidos. O primeiro carregamento pode levar alguns minutos.",
		KeyLoadNow:           "Carregar",
		KeyLater:             "Depois",
		KeyWarning:           "Aviso",

		KeyCacheFile:          "Arquivo de Cache",
		KeyClientSecretFile:   "Arquivo OAuth Client Secret",
		KeyTokenFile:          "Arquivo de Token",
		KeyExportDirectory:    "Diretório de Exportação",
		KeyExportFormat:       "Formato de Exportação",
		KeySearchDebounce:     "Atraso da Busca (ms)",
		KeyFilesSection:       "Arquivos",
		KeyExportSection:      "Exportação",
		KeyInterfaceSection:   "Interface",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyRestartForLanguage: "Alguns textos mudam após reiniciar.",

		KeyShortcutsText: `Funções Principais:
  Ctrl+Q          Sair
  Ctrl+R          Atualizar vídeos do YouTube
  Ctrl+E          Exportar resultados atuais
  F1              Ajuda

Navegação:
  Selecionar      Mostrar detalhes do vídeo
  Digitar busca   Busca em tempo real

Dicas:
  • Clique nos cabeçalhos para ordenar
  • Filtre primeiro, depois ordene`,

		KeyHowToText: `Primeiros Passos:
1. Coloque o arquivo OAuth client secret onde as Configurações indicam
2. Clique em 'Atualizar Vídeos' e entre na sua conta Google
3. Aguarde o carregamento (pode levar alguns minutos)
4. Comece a buscar!

Problemas:
• Se os vídeos não carregarem, verifique sua conexão
• Se a autenticação falhar, exclua o arquivo de token e entre novamente
• Para problemas de cota da API, aguarde 24 horas`,

		KeyAboutText: `Um aplicativo para buscar seus vídeos curtidos do YouTube.

Privacidade:
Apenas seus vídeos curtidos são lidos (somente leitura) e tudo é armazenado localmente. Nenhum dado é enviado a terceiros.`,
	}
}
