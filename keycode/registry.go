//go:build linux

package keycode

import kernel "github.com/kbdlayer/layerz/linux/input"

// byName maps the Linux input-event-codes.h symbolic name of every KEY_*,
// BTN_* and REL_* constant to its numeric code. Names are
// taken verbatim from the kernel header, so layouts can reference "KEY_A",
// "BTN_LEFT", or "REL_WHEEL" and get the exact code the evdev/uinput layer
// expects on the wire.
var byName = map[string]uint16{
	"KEY_RESERVED": uint16(kernel.KEY_RESERVED),
	"KEY_ESC": uint16(kernel.KEY_ESC),
	"KEY_1": uint16(kernel.KEY_1),
	"KEY_2": uint16(kernel.KEY_2),
	"KEY_3": uint16(kernel.KEY_3),
	"KEY_4": uint16(kernel.KEY_4),
	"KEY_5": uint16(kernel.KEY_5),
	"KEY_6": uint16(kernel.KEY_6),
	"KEY_7": uint16(kernel.KEY_7),
	"KEY_8": uint16(kernel.KEY_8),
	"KEY_9": uint16(kernel.KEY_9),
	"KEY_0": uint16(kernel.KEY_0),
	"KEY_MINUS": uint16(kernel.KEY_MINUS),
	"KEY_EQUAL": uint16(kernel.KEY_EQUAL),
	"KEY_BACKSPACE": uint16(kernel.KEY_BACKSPACE),
	"KEY_TAB": uint16(kernel.KEY_TAB),
	"KEY_Q": uint16(kernel.KEY_Q),
	"KEY_W": uint16(kernel.KEY_W),
	"KEY_E": uint16(kernel.KEY_E),
	"KEY_R": uint16(kernel.KEY_R),
	"KEY_T": uint16(kernel.KEY_T),
	"KEY_Y": uint16(kernel.KEY_Y),
	"KEY_U": uint16(kernel.KEY_U),
	"KEY_I": uint16(kernel.KEY_I),
	"KEY_O": uint16(kernel.KEY_O),
	"KEY_P": uint16(kernel.KEY_P),
	"KEY_LEFTBRACE": uint16(kernel.KEY_LEFTBRACE),
	"KEY_RIGHTBRACE": uint16(kernel.KEY_RIGHTBRACE),
	"KEY_ENTER": uint16(kernel.KEY_ENTER),
	"KEY_LEFTCTRL": uint16(kernel.KEY_LEFTCTRL),
	"KEY_A": uint16(kernel.KEY_A),
	"KEY_S": uint16(kernel.KEY_S),
	"KEY_D": uint16(kernel.KEY_D),
	"KEY_F": uint16(kernel.KEY_F),
	"KEY_G": uint16(kernel.KEY_G),
	"KEY_H": uint16(kernel.KEY_H),
	"KEY_J": uint16(kernel.KEY_J),
	"KEY_K": uint16(kernel.KEY_K),
	"KEY_L": uint16(kernel.KEY_L),
	"KEY_SEMICOLON": uint16(kernel.KEY_SEMICOLON),
	"KEY_APOSTROPHE": uint16(kernel.KEY_APOSTROPHE),
	"KEY_GRAVE": uint16(kernel.KEY_GRAVE),
	"KEY_LEFTSHIFT": uint16(kernel.KEY_LEFTSHIFT),
	"KEY_BACKSLASH": uint16(kernel.KEY_BACKSLASH),
	"KEY_Z": uint16(kernel.KEY_Z),
	"KEY_X": uint16(kernel.KEY_X),
	"KEY_C": uint16(kernel.KEY_C),
	"KEY_V": uint16(kernel.KEY_V),
	"KEY_B": uint16(kernel.KEY_B),
	"KEY_N": uint16(kernel.KEY_N),
	"KEY_M": uint16(kernel.KEY_M),
	"KEY_COMMA": uint16(kernel.KEY_COMMA),
	"KEY_DOT": uint16(kernel.KEY_DOT),
	"KEY_SLASH": uint16(kernel.KEY_SLASH),
	"KEY_RIGHTSHIFT": uint16(kernel.KEY_RIGHTSHIFT),
	"KEY_KPASTERISK": uint16(kernel.KEY_KPASTERISK),
	"KEY_LEFTALT": uint16(kernel.KEY_LEFTALT),
	"KEY_SPACE": uint16(kernel.KEY_SPACE),
	"KEY_CAPSLOCK": uint16(kernel.KEY_CAPSLOCK),
	"KEY_F1": uint16(kernel.KEY_F1),
	"KEY_F2": uint16(kernel.KEY_F2),
	"KEY_F3": uint16(kernel.KEY_F3),
	"KEY_F4": uint16(kernel.KEY_F4),
	"KEY_F5": uint16(kernel.KEY_F5),
	"KEY_F6": uint16(kernel.KEY_F6),
	"KEY_F7": uint16(kernel.KEY_F7),
	"KEY_F8": uint16(kernel.KEY_F8),
	"KEY_F9": uint16(kernel.KEY_F9),
	"KEY_F10": uint16(kernel.KEY_F10),
	"KEY_NUMLOCK": uint16(kernel.KEY_NUMLOCK),
	"KEY_SCROLLLOCK": uint16(kernel.KEY_SCROLLLOCK),
	"KEY_KP7": uint16(kernel.KEY_KP7),
	"KEY_KP8": uint16(kernel.KEY_KP8),
	"KEY_KP9": uint16(kernel.KEY_KP9),
	"KEY_KPMINUS": uint16(kernel.KEY_KPMINUS),
	"KEY_KP4": uint16(kernel.KEY_KP4),
	"KEY_KP5": uint16(kernel.KEY_KP5),
	"KEY_KP6": uint16(kernel.KEY_KP6),
	"KEY_KPPLUS": uint16(kernel.KEY_KPPLUS),
	"KEY_KP1": uint16(kernel.KEY_KP1),
	"KEY_KP2": uint16(kernel.KEY_KP2),
	"KEY_KP3": uint16(kernel.KEY_KP3),
	"KEY_KP0": uint16(kernel.KEY_KP0),
	"KEY_KPDOT": uint16(kernel.KEY_KPDOT),
	"KEY_ZENKAKUHANKAKU": uint16(kernel.KEY_ZENKAKUHANKAKU),
	"KEY_102ND": uint16(kernel.KEY_102ND),
	"KEY_F11": uint16(kernel.KEY_F11),
	"KEY_F12": uint16(kernel.KEY_F12),
	"KEY_RO": uint16(kernel.KEY_RO),
	"KEY_KATAKANA": uint16(kernel.KEY_KATAKANA),
	"KEY_HIRAGANA": uint16(kernel.KEY_HIRAGANA),
	"KEY_HENKAN": uint16(kernel.KEY_HENKAN),
	"KEY_KATAKANAHIRAGANA": uint16(kernel.KEY_KATAKANAHIRAGANA),
	"KEY_MUHENKAN": uint16(kernel.KEY_MUHENKAN),
	"KEY_KPJPCOMMA": uint16(kernel.KEY_KPJPCOMMA),
	"KEY_KPENTER": uint16(kernel.KEY_KPENTER),
	"KEY_RIGHTCTRL": uint16(kernel.KEY_RIGHTCTRL),
	"KEY_KPSLASH": uint16(kernel.KEY_KPSLASH),
	"KEY_SYSRQ": uint16(kernel.KEY_SYSRQ),
	"KEY_RIGHTALT": uint16(kernel.KEY_RIGHTALT),
	"KEY_LINEFEED": uint16(kernel.KEY_LINEFEED),
	"KEY_HOME": uint16(kernel.KEY_HOME),
	"KEY_UP": uint16(kernel.KEY_UP),
	"KEY_PAGEUP": uint16(kernel.KEY_PAGEUP),
	"KEY_LEFT": uint16(kernel.KEY_LEFT),
	"KEY_RIGHT": uint16(kernel.KEY_RIGHT),
	"KEY_END": uint16(kernel.KEY_END),
	"KEY_DOWN": uint16(kernel.KEY_DOWN),
	"KEY_PAGEDOWN": uint16(kernel.KEY_PAGEDOWN),
	"KEY_INSERT": uint16(kernel.KEY_INSERT),
	"KEY_DELETE": uint16(kernel.KEY_DELETE),
	"KEY_MACRO": uint16(kernel.KEY_MACRO),
	"KEY_MUTE": uint16(kernel.KEY_MUTE),
	"KEY_VOLUMEDOWN": uint16(kernel.KEY_VOLUMEDOWN),
	"KEY_VOLUMEUP": uint16(kernel.KEY_VOLUMEUP),
	"KEY_POWER": uint16(kernel.KEY_POWER),
	"KEY_KPEQUAL": uint16(kernel.KEY_KPEQUAL),
	"KEY_KPPLUSMINUS": uint16(kernel.KEY_KPPLUSMINUS),
	"KEY_PAUSE": uint16(kernel.KEY_PAUSE),
	"KEY_SCALE": uint16(kernel.KEY_SCALE),
	"KEY_KPCOMMA": uint16(kernel.KEY_KPCOMMA),
	"KEY_HANGEUL": uint16(kernel.KEY_HANGEUL),
	"KEY_HANGUEL": uint16(kernel.KEY_HANGUEL),
	"KEY_HANJA": uint16(kernel.KEY_HANJA),
	"KEY_YEN": uint16(kernel.KEY_YEN),
	"KEY_LEFTMETA": uint16(kernel.KEY_LEFTMETA),
	"KEY_RIGHTMETA": uint16(kernel.KEY_RIGHTMETA),
	"KEY_COMPOSE": uint16(kernel.KEY_COMPOSE),
	"KEY_STOP": uint16(kernel.KEY_STOP),
	"KEY_AGAIN": uint16(kernel.KEY_AGAIN),
	"KEY_PROPS": uint16(kernel.KEY_PROPS),
	"KEY_UNDO": uint16(kernel.KEY_UNDO),
	"KEY_FRONT": uint16(kernel.KEY_FRONT),
	"KEY_COPY": uint16(kernel.KEY_COPY),
	"KEY_OPEN": uint16(kernel.KEY_OPEN),
	"KEY_PASTE": uint16(kernel.KEY_PASTE),
	"KEY_FIND": uint16(kernel.KEY_FIND),
	"KEY_CUT": uint16(kernel.KEY_CUT),
	"KEY_HELP": uint16(kernel.KEY_HELP),
	"KEY_MENU": uint16(kernel.KEY_MENU),
	"KEY_CALC": uint16(kernel.KEY_CALC),
	"KEY_SETUP": uint16(kernel.KEY_SETUP),
	"KEY_SLEEP": uint16(kernel.KEY_SLEEP),
	"KEY_WAKEUP": uint16(kernel.KEY_WAKEUP),
	"KEY_FILE": uint16(kernel.KEY_FILE),
	"KEY_SENDFILE": uint16(kernel.KEY_SENDFILE),
	"KEY_DELETEFILE": uint16(kernel.KEY_DELETEFILE),
	"KEY_XFER": uint16(kernel.KEY_XFER),
	"KEY_PROG1": uint16(kernel.KEY_PROG1),
	"KEY_PROG2": uint16(kernel.KEY_PROG2),
	"KEY_WWW": uint16(kernel.KEY_WWW),
	"KEY_MSDOS": uint16(kernel.KEY_MSDOS),
	"KEY_COFFEE": uint16(kernel.KEY_COFFEE),
	"KEY_SCREENLOCK": uint16(kernel.KEY_SCREENLOCK),
	"KEY_ROTATE_DISPLAY": uint16(kernel.KEY_ROTATE_DISPLAY),
	"KEY_DIRECTION": uint16(kernel.KEY_DIRECTION),
	"KEY_CYCLEWINDOWS": uint16(kernel.KEY_CYCLEWINDOWS),
	"KEY_MAIL": uint16(kernel.KEY_MAIL),
	"KEY_BOOKMARKS": uint16(kernel.KEY_BOOKMARKS),
	"KEY_COMPUTER": uint16(kernel.KEY_COMPUTER),
	"KEY_BACK": uint16(kernel.KEY_BACK),
	"KEY_FORWARD": uint16(kernel.KEY_FORWARD),
	"KEY_CLOSECD": uint16(kernel.KEY_CLOSECD),
	"KEY_EJECTCD": uint16(kernel.KEY_EJECTCD),
	"KEY_EJECTCLOSECD": uint16(kernel.KEY_EJECTCLOSECD),
	"KEY_NEXTSONG": uint16(kernel.KEY_NEXTSONG),
	"KEY_PLAYPAUSE": uint16(kernel.KEY_PLAYPAUSE),
	"KEY_PREVIOUSSONG": uint16(kernel.KEY_PREVIOUSSONG),
	"KEY_STOPCD": uint16(kernel.KEY_STOPCD),
	"KEY_RECORD": uint16(kernel.KEY_RECORD),
	"KEY_REWIND": uint16(kernel.KEY_REWIND),
	"KEY_PHONE": uint16(kernel.KEY_PHONE),
	"KEY_ISO": uint16(kernel.KEY_ISO),
	"KEY_CONFIG": uint16(kernel.KEY_CONFIG),
	"KEY_HOMEPAGE": uint16(kernel.KEY_HOMEPAGE),
	"KEY_REFRESH": uint16(kernel.KEY_REFRESH),
	"KEY_EXIT": uint16(kernel.KEY_EXIT),
	"KEY_MOVE": uint16(kernel.KEY_MOVE),
	"KEY_EDIT": uint16(kernel.KEY_EDIT),
	"KEY_SCROLLUP": uint16(kernel.KEY_SCROLLUP),
	"KEY_SCROLLDOWN": uint16(kernel.KEY_SCROLLDOWN),
	"KEY_KPLEFTPAREN": uint16(kernel.KEY_KPLEFTPAREN),
	"KEY_KPRIGHTPAREN": uint16(kernel.KEY_KPRIGHTPAREN),
	"KEY_NEW": uint16(kernel.KEY_NEW),
	"KEY_REDO": uint16(kernel.KEY_REDO),
	"KEY_F13": uint16(kernel.KEY_F13),
	"KEY_F14": uint16(kernel.KEY_F14),
	"KEY_F15": uint16(kernel.KEY_F15),
	"KEY_F16": uint16(kernel.KEY_F16),
	"KEY_F17": uint16(kernel.KEY_F17),
	"KEY_F18": uint16(kernel.KEY_F18),
	"KEY_F19": uint16(kernel.KEY_F19),
	"KEY_F20": uint16(kernel.KEY_F20),
	"KEY_F21": uint16(kernel.KEY_F21),
	"KEY_F22": uint16(kernel.KEY_F22),
	"KEY_F23": uint16(kernel.KEY_F23),
	"KEY_F24": uint16(kernel.KEY_F24),
	"KEY_PLAYCD": uint16(kernel.KEY_PLAYCD),
	"KEY_PAUSECD": uint16(kernel.KEY_PAUSECD),
	"KEY_PROG3": uint16(kernel.KEY_PROG3),
	"KEY_PROG4": uint16(kernel.KEY_PROG4),
	"KEY_ALL_APPLICATIONS": uint16(kernel.KEY_ALL_APPLICATIONS),
	"KEY_DASHBOARD": uint16(kernel.KEY_DASHBOARD),
	"KEY_SUSPEND": uint16(kernel.KEY_SUSPEND),
	"KEY_CLOSE": uint16(kernel.KEY_CLOSE),
	"KEY_PLAY": uint16(kernel.KEY_PLAY),
	"KEY_FASTFORWARD": uint16(kernel.KEY_FASTFORWARD),
	"KEY_BASSBOOST": uint16(kernel.KEY_BASSBOOST),
	"KEY_PRINT": uint16(kernel.KEY_PRINT),
	"KEY_HP": uint16(kernel.KEY_HP),
	"KEY_CAMERA": uint16(kernel.KEY_CAMERA),
	"KEY_SOUND": uint16(kernel.KEY_SOUND),
	"KEY_QUESTION": uint16(kernel.KEY_QUESTION),
	"KEY_EMAIL": uint16(kernel.KEY_EMAIL),
	"KEY_CHAT": uint16(kernel.KEY_CHAT),
	"KEY_SEARCH": uint16(kernel.KEY_SEARCH),
	"KEY_CONNECT": uint16(kernel.KEY_CONNECT),
	"KEY_FINANCE": uint16(kernel.KEY_FINANCE),
	"KEY_SPORT": uint16(kernel.KEY_SPORT),
	"KEY_SHOP": uint16(kernel.KEY_SHOP),
	"KEY_ALTERASE": uint16(kernel.KEY_ALTERASE),
	"KEY_CANCEL": uint16(kernel.KEY_CANCEL),
	"KEY_BRIGHTNESSDOWN": uint16(kernel.KEY_BRIGHTNESSDOWN),
	"KEY_BRIGHTNESSUP": uint16(kernel.KEY_BRIGHTNESSUP),
	"KEY_MEDIA": uint16(kernel.KEY_MEDIA),
	"KEY_SWITCHVIDEOMODE": uint16(kernel.KEY_SWITCHVIDEOMODE),
	"KEY_KBDILLUMTOGGLE": uint16(kernel.KEY_KBDILLUMTOGGLE),
	"KEY_KBDILLUMDOWN": uint16(kernel.KEY_KBDILLUMDOWN),
	"KEY_KBDILLUMUP": uint16(kernel.KEY_KBDILLUMUP),
	"KEY_SEND": uint16(kernel.KEY_SEND),
	"KEY_REPLY": uint16(kernel.KEY_REPLY),
	"KEY_FORWARDMAIL": uint16(kernel.KEY_FORWARDMAIL),
	"KEY_SAVE": uint16(kernel.KEY_SAVE),
	"KEY_DOCUMENTS": uint16(kernel.KEY_DOCUMENTS),
	"KEY_BATTERY": uint16(kernel.KEY_BATTERY),
	"KEY_BLUETOOTH": uint16(kernel.KEY_BLUETOOTH),
	"KEY_WLAN": uint16(kernel.KEY_WLAN),
	"KEY_UWB": uint16(kernel.KEY_UWB),
	"KEY_UNKNOWN": uint16(kernel.KEY_UNKNOWN),
	"KEY_VIDEO_NEXT": uint16(kernel.KEY_VIDEO_NEXT),
	"KEY_VIDEO_PREV": uint16(kernel.KEY_VIDEO_PREV),
	"KEY_BRIGHTNESS_CYCLE": uint16(kernel.KEY_BRIGHTNESS_CYCLE),
	"KEY_BRIGHTNESS_AUTO": uint16(kernel.KEY_BRIGHTNESS_AUTO),
	"KEY_BRIGHTNESS_ZERO": uint16(kernel.KEY_BRIGHTNESS_ZERO),
	"KEY_DISPLAY_OFF": uint16(kernel.KEY_DISPLAY_OFF),
	"KEY_WWAN": uint16(kernel.KEY_WWAN),
	"KEY_WIMAX": uint16(kernel.KEY_WIMAX),
	"KEY_RFKILL": uint16(kernel.KEY_RFKILL),
	"KEY_MICMUTE": uint16(kernel.KEY_MICMUTE),
	"KEY_OK": uint16(kernel.KEY_OK),
	"KEY_SELECT": uint16(kernel.KEY_SELECT),
	"KEY_GOTO": uint16(kernel.KEY_GOTO),
	"KEY_CLEAR": uint16(kernel.KEY_CLEAR),
	"KEY_POWER2": uint16(kernel.KEY_POWER2),
	"KEY_OPTION": uint16(kernel.KEY_OPTION),
	"KEY_INFO": uint16(kernel.KEY_INFO),
	"KEY_TIME": uint16(kernel.KEY_TIME),
	"KEY_VENDOR": uint16(kernel.KEY_VENDOR),
	"KEY_ARCHIVE": uint16(kernel.KEY_ARCHIVE),
	"KEY_PROGRAM": uint16(kernel.KEY_PROGRAM),
	"KEY_CHANNEL": uint16(kernel.KEY_CHANNEL),
	"KEY_FAVORITES": uint16(kernel.KEY_FAVORITES),
	"KEY_EPG": uint16(kernel.KEY_EPG),
	"KEY_PVR": uint16(kernel.KEY_PVR),
	"KEY_MHP": uint16(kernel.KEY_MHP),
	"KEY_LANGUAGE": uint16(kernel.KEY_LANGUAGE),
	"KEY_TITLE": uint16(kernel.KEY_TITLE),
	"KEY_SUBTITLE": uint16(kernel.KEY_SUBTITLE),
	"KEY_ANGLE": uint16(kernel.KEY_ANGLE),
	"KEY_FULL_SCREEN": uint16(kernel.KEY_FULL_SCREEN),
	"KEY_ZOOM": uint16(kernel.KEY_ZOOM),
	"KEY_MODE": uint16(kernel.KEY_MODE),
	"KEY_KEYBOARD": uint16(kernel.KEY_KEYBOARD),
	"KEY_ASPECT_RATIO": uint16(kernel.KEY_ASPECT_RATIO),
	"KEY_SCREEN": uint16(kernel.KEY_SCREEN),
	"KEY_PC": uint16(kernel.KEY_PC),
	"KEY_TV": uint16(kernel.KEY_TV),
	"KEY_TV2": uint16(kernel.KEY_TV2),
	"KEY_VCR": uint16(kernel.KEY_VCR),
	"KEY_VCR2": uint16(kernel.KEY_VCR2),
	"KEY_SAT": uint16(kernel.KEY_SAT),
	"KEY_SAT2": uint16(kernel.KEY_SAT2),
	"KEY_CD": uint16(kernel.KEY_CD),
	"KEY_TAPE": uint16(kernel.KEY_TAPE),
	"KEY_RADIO": uint16(kernel.KEY_RADIO),
	"KEY_TUNER": uint16(kernel.KEY_TUNER),
	"KEY_PLAYER": uint16(kernel.KEY_PLAYER),
	"KEY_TEXT": uint16(kernel.KEY_TEXT),
	"KEY_DVD": uint16(kernel.KEY_DVD),
	"KEY_AUX": uint16(kernel.KEY_AUX),
	"KEY_MP3": uint16(kernel.KEY_MP3),
	"KEY_AUDIO": uint16(kernel.KEY_AUDIO),
	"KEY_VIDEO": uint16(kernel.KEY_VIDEO),
	"KEY_DIRECTORY": uint16(kernel.KEY_DIRECTORY),
	"KEY_LIST": uint16(kernel.KEY_LIST),
	"KEY_MEMO": uint16(kernel.KEY_MEMO),
	"KEY_CALENDAR": uint16(kernel.KEY_CALENDAR),
	"KEY_RED": uint16(kernel.KEY_RED),
	"KEY_GREEN": uint16(kernel.KEY_GREEN),
	"KEY_YELLOW": uint16(kernel.KEY_YELLOW),
	"KEY_BLUE": uint16(kernel.KEY_BLUE),
	"KEY_CHANNELUP": uint16(kernel.KEY_CHANNELUP),
	"KEY_CHANNELDOWN": uint16(kernel.KEY_CHANNELDOWN),
	"KEY_FIRST": uint16(kernel.KEY_FIRST),
	"KEY_LAST": uint16(kernel.KEY_LAST),
	"KEY_AB": uint16(kernel.KEY_AB),
	"KEY_NEXT": uint16(kernel.KEY_NEXT),
	"KEY_RESTART": uint16(kernel.KEY_RESTART),
	"KEY_SLOW": uint16(kernel.KEY_SLOW),
	"KEY_SHUFFLE": uint16(kernel.KEY_SHUFFLE),
	"KEY_BREAK": uint16(kernel.KEY_BREAK),
	"KEY_PREVIOUS": uint16(kernel.KEY_PREVIOUS),
	"KEY_DIGITS": uint16(kernel.KEY_DIGITS),
	"KEY_TEEN": uint16(kernel.KEY_TEEN),
	"KEY_TWEN": uint16(kernel.KEY_TWEN),
	"KEY_VIDEOPHONE": uint16(kernel.KEY_VIDEOPHONE),
	"KEY_GAMES": uint16(kernel.KEY_GAMES),
	"KEY_ZOOMIN": uint16(kernel.KEY_ZOOMIN),
	"KEY_ZOOMOUT": uint16(kernel.KEY_ZOOMOUT),
	"KEY_ZOOMRESET": uint16(kernel.KEY_ZOOMRESET),
	"KEY_WORDPROCESSOR": uint16(kernel.KEY_WORDPROCESSOR),
	"KEY_EDITOR": uint16(kernel.KEY_EDITOR),
	"KEY_SPREADSHEET": uint16(kernel.KEY_SPREADSHEET),
	"KEY_GRAPHICSEDITOR": uint16(kernel.KEY_GRAPHICSEDITOR),
	"KEY_PRESENTATION": uint16(kernel.KEY_PRESENTATION),
	"KEY_DATABASE": uint16(kernel.KEY_DATABASE),
	"KEY_NEWS": uint16(kernel.KEY_NEWS),
	"KEY_VOICEMAIL": uint16(kernel.KEY_VOICEMAIL),
	"KEY_ADDRESSBOOK": uint16(kernel.KEY_ADDRESSBOOK),
	"KEY_MESSENGER": uint16(kernel.KEY_MESSENGER),
	"KEY_DISPLAYTOGGLE": uint16(kernel.KEY_DISPLAYTOGGLE),
	"KEY_BRIGHTNESS_TOGGLE": uint16(kernel.KEY_BRIGHTNESS_TOGGLE),
	"KEY_SPELLCHECK": uint16(kernel.KEY_SPELLCHECK),
	"KEY_LOGOFF": uint16(kernel.KEY_LOGOFF),
	"KEY_DOLLAR": uint16(kernel.KEY_DOLLAR),
	"KEY_EURO": uint16(kernel.KEY_EURO),
	"KEY_FRAMEBACK": uint16(kernel.KEY_FRAMEBACK),
	"KEY_FRAMEFORWARD": uint16(kernel.KEY_FRAMEFORWARD),
	"KEY_CONTEXT_MENU": uint16(kernel.KEY_CONTEXT_MENU),
	"KEY_MEDIA_REPEAT": uint16(kernel.KEY_MEDIA_REPEAT),
	"KEY_10CHANNELSUP": uint16(kernel.KEY_10CHANNELSUP),
	"KEY_10CHANNELSDOWN": uint16(kernel.KEY_10CHANNELSDOWN),
	"KEY_IMAGES": uint16(kernel.KEY_IMAGES),
	"KEY_NOTIFICATION_CENTER": uint16(kernel.KEY_NOTIFICATION_CENTER),
	"KEY_PICKUP_PHONE": uint16(kernel.KEY_PICKUP_PHONE),
	"KEY_HANGUP_PHONE": uint16(kernel.KEY_HANGUP_PHONE),
	"KEY_LINK_PHONE": uint16(kernel.KEY_LINK_PHONE),
	"KEY_DEL_EOL": uint16(kernel.KEY_DEL_EOL),
	"KEY_DEL_EOS": uint16(kernel.KEY_DEL_EOS),
	"KEY_INS_LINE": uint16(kernel.KEY_INS_LINE),
	"KEY_DEL_LINE": uint16(kernel.KEY_DEL_LINE),
	"KEY_FN": uint16(kernel.KEY_FN),
	"KEY_FN_ESC": uint16(kernel.KEY_FN_ESC),
	"KEY_FN_F1": uint16(kernel.KEY_FN_F1),
	"KEY_FN_F2": uint16(kernel.KEY_FN_F2),
	"KEY_FN_F3": uint16(kernel.KEY_FN_F3),
	"KEY_FN_F4": uint16(kernel.KEY_FN_F4),
	"KEY_FN_F5": uint16(kernel.KEY_FN_F5),
	"KEY_FN_F6": uint16(kernel.KEY_FN_F6),
	"KEY_FN_F7": uint16(kernel.KEY_FN_F7),
	"KEY_FN_F8": uint16(kernel.KEY_FN_F8),
	"KEY_FN_F9": uint16(kernel.KEY_FN_F9),
	"KEY_FN_F10": uint16(kernel.KEY_FN_F10),
	"KEY_FN_F11": uint16(kernel.KEY_FN_F11),
	"KEY_FN_F12": uint16(kernel.KEY_FN_F12),
	"KEY_FN_1": uint16(kernel.KEY_FN_1),
	"KEY_FN_2": uint16(kernel.KEY_FN_2),
	"KEY_FN_D": uint16(kernel.KEY_FN_D),
	"KEY_FN_E": uint16(kernel.KEY_FN_E),
	"KEY_FN_F": uint16(kernel.KEY_FN_F),
	"KEY_FN_S": uint16(kernel.KEY_FN_S),
	"KEY_FN_B": uint16(kernel.KEY_FN_B),
	"KEY_FN_RIGHT_SHIFT": uint16(kernel.KEY_FN_RIGHT_SHIFT),
	"KEY_BRL_DOT1": uint16(kernel.KEY_BRL_DOT1),
	"KEY_BRL_DOT2": uint16(kernel.KEY_BRL_DOT2),
	"KEY_BRL_DOT3": uint16(kernel.KEY_BRL_DOT3),
	"KEY_BRL_DOT4": uint16(kernel.KEY_BRL_DOT4),
	"KEY_BRL_DOT5": uint16(kernel.KEY_BRL_DOT5),
	"KEY_BRL_DOT6": uint16(kernel.KEY_BRL_DOT6),
	"KEY_BRL_DOT7": uint16(kernel.KEY_BRL_DOT7),
	"KEY_BRL_DOT8": uint16(kernel.KEY_BRL_DOT8),
	"KEY_BRL_DOT9": uint16(kernel.KEY_BRL_DOT9),
	"KEY_BRL_DOT10": uint16(kernel.KEY_BRL_DOT10),
	"KEY_NUMERIC_0": uint16(kernel.KEY_NUMERIC_0),
	"KEY_NUMERIC_1": uint16(kernel.KEY_NUMERIC_1),
	"KEY_NUMERIC_2": uint16(kernel.KEY_NUMERIC_2),
	"KEY_NUMERIC_3": uint16(kernel.KEY_NUMERIC_3),
	"KEY_NUMERIC_4": uint16(kernel.KEY_NUMERIC_4),
	"KEY_NUMERIC_5": uint16(kernel.KEY_NUMERIC_5),
	"KEY_NUMERIC_6": uint16(kernel.KEY_NUMERIC_6),
	"KEY_NUMERIC_7": uint16(kernel.KEY_NUMERIC_7),
	"KEY_NUMERIC_8": uint16(kernel.KEY_NUMERIC_8),
	"KEY_NUMERIC_9": uint16(kernel.KEY_NUMERIC_9),
	"KEY_NUMERIC_STAR": uint16(kernel.KEY_NUMERIC_STAR),
	"KEY_NUMERIC_POUND": uint16(kernel.KEY_NUMERIC_POUND),
	"KEY_NUMERIC_A": uint16(kernel.KEY_NUMERIC_A),
	"KEY_NUMERIC_B": uint16(kernel.KEY_NUMERIC_B),
	"KEY_NUMERIC_C": uint16(kernel.KEY_NUMERIC_C),
	"KEY_NUMERIC_D": uint16(kernel.KEY_NUMERIC_D),
	"KEY_CAMERA_FOCUS": uint16(kernel.KEY_CAMERA_FOCUS),
	"KEY_WPS_BUTTON": uint16(kernel.KEY_WPS_BUTTON),
	"KEY_TOUCHPAD_TOGGLE": uint16(kernel.KEY_TOUCHPAD_TOGGLE),
	"KEY_TOUCHPAD_ON": uint16(kernel.KEY_TOUCHPAD_ON),
	"KEY_TOUCHPAD_OFF": uint16(kernel.KEY_TOUCHPAD_OFF),
	"KEY_CAMERA_ZOOMIN": uint16(kernel.KEY_CAMERA_ZOOMIN),
	"KEY_CAMERA_ZOOMOUT": uint16(kernel.KEY_CAMERA_ZOOMOUT),
	"KEY_CAMERA_UP": uint16(kernel.KEY_CAMERA_UP),
	"KEY_CAMERA_DOWN": uint16(kernel.KEY_CAMERA_DOWN),
	"KEY_CAMERA_LEFT": uint16(kernel.KEY_CAMERA_LEFT),
	"KEY_CAMERA_RIGHT": uint16(kernel.KEY_CAMERA_RIGHT),
	"KEY_ATTENDANT_ON": uint16(kernel.KEY_ATTENDANT_ON),
	"KEY_ATTENDANT_OFF": uint16(kernel.KEY_ATTENDANT_OFF),
	"KEY_ATTENDANT_TOGGLE": uint16(kernel.KEY_ATTENDANT_TOGGLE),
	"KEY_LIGHTS_TOGGLE": uint16(kernel.KEY_LIGHTS_TOGGLE),
	"KEY_ALS_TOGGLE": uint16(kernel.KEY_ALS_TOGGLE),
	"KEY_ROTATE_LOCK_TOGGLE": uint16(kernel.KEY_ROTATE_LOCK_TOGGLE),
	"KEY_REFRESH_RATE_TOGGLE": uint16(kernel.KEY_REFRESH_RATE_TOGGLE),
	"KEY_BUTTONCONFIG": uint16(kernel.KEY_BUTTONCONFIG),
	"KEY_TASKMANAGER": uint16(kernel.KEY_TASKMANAGER),
	"KEY_JOURNAL": uint16(kernel.KEY_JOURNAL),
	"KEY_CONTROLPANEL": uint16(kernel.KEY_CONTROLPANEL),
	"KEY_APPSELECT": uint16(kernel.KEY_APPSELECT),
	"KEY_SCREENSAVER": uint16(kernel.KEY_SCREENSAVER),
	"KEY_VOICECOMMAND": uint16(kernel.KEY_VOICECOMMAND),
	"KEY_ASSISTANT": uint16(kernel.KEY_ASSISTANT),
	"KEY_KBD_LAYOUT_NEXT": uint16(kernel.KEY_KBD_LAYOUT_NEXT),
	"KEY_EMOJI_PICKER": uint16(kernel.KEY_EMOJI_PICKER),
	"KEY_DICTATE": uint16(kernel.KEY_DICTATE),
	"KEY_CAMERA_ACCESS_ENABLE": uint16(kernel.KEY_CAMERA_ACCESS_ENABLE),
	"KEY_CAMERA_ACCESS_DISABLE": uint16(kernel.KEY_CAMERA_ACCESS_DISABLE),
	"KEY_CAMERA_ACCESS_TOGGLE": uint16(kernel.KEY_CAMERA_ACCESS_TOGGLE),
	"KEY_ACCESSIBILITY": uint16(kernel.KEY_ACCESSIBILITY),
	"KEY_DO_NOT_DISTURB": uint16(kernel.KEY_DO_NOT_DISTURB),
	"KEY_BRIGHTNESS_MIN": uint16(kernel.KEY_BRIGHTNESS_MIN),
	"KEY_BRIGHTNESS_MAX": uint16(kernel.KEY_BRIGHTNESS_MAX),
	"KEY_KBDINPUTASSIST_PREV": uint16(kernel.KEY_KBDINPUTASSIST_PREV),
	"KEY_KBDINPUTASSIST_NEXT": uint16(kernel.KEY_KBDINPUTASSIST_NEXT),
	"KEY_KBDINPUTASSIST_PREVGROUP": uint16(kernel.KEY_KBDINPUTASSIST_PREVGROUP),
	"KEY_KBDINPUTASSIST_NEXTGROUP": uint16(kernel.KEY_KBDINPUTASSIST_NEXTGROUP),
	"KEY_KBDINPUTASSIST_ACCEPT": uint16(kernel.KEY_KBDINPUTASSIST_ACCEPT),
	"KEY_KBDINPUTASSIST_CANCEL": uint16(kernel.KEY_KBDINPUTASSIST_CANCEL),
	"KEY_RIGHT_UP": uint16(kernel.KEY_RIGHT_UP),
	"KEY_RIGHT_DOWN": uint16(kernel.KEY_RIGHT_DOWN),
	"KEY_LEFT_UP": uint16(kernel.KEY_LEFT_UP),
	"KEY_LEFT_DOWN": uint16(kernel.KEY_LEFT_DOWN),
	"KEY_ROOT_MENU": uint16(kernel.KEY_ROOT_MENU),
	"KEY_MEDIA_TOP_MENU": uint16(kernel.KEY_MEDIA_TOP_MENU),
	"KEY_NUMERIC_11": uint16(kernel.KEY_NUMERIC_11),
	"KEY_NUMERIC_12": uint16(kernel.KEY_NUMERIC_12),
	"KEY_AUDIO_DESC": uint16(kernel.KEY_AUDIO_DESC),
	"KEY_3D_MODE": uint16(kernel.KEY_3D_MODE),
	"KEY_NEXT_FAVORITE": uint16(kernel.KEY_NEXT_FAVORITE),
	"KEY_STOP_RECORD": uint16(kernel.KEY_STOP_RECORD),
	"KEY_PAUSE_RECORD": uint16(kernel.KEY_PAUSE_RECORD),
	"KEY_VOD": uint16(kernel.KEY_VOD),
	"KEY_UNMUTE": uint16(kernel.KEY_UNMUTE),
	"KEY_FASTREVERSE": uint16(kernel.KEY_FASTREVERSE),
	"KEY_SLOWREVERSE": uint16(kernel.KEY_SLOWREVERSE),
	"KEY_DATA": uint16(kernel.KEY_DATA),
	"KEY_ONSCREEN_KEYBOARD": uint16(kernel.KEY_ONSCREEN_KEYBOARD),
	"KEY_PRIVACY_SCREEN_TOGGLE": uint16(kernel.KEY_PRIVACY_SCREEN_TOGGLE),
	"KEY_SELECTIVE_SCREENSHOT": uint16(kernel.KEY_SELECTIVE_SCREENSHOT),
	"KEY_NEXT_ELEMENT": uint16(kernel.KEY_NEXT_ELEMENT),
	"KEY_PREVIOUS_ELEMENT": uint16(kernel.KEY_PREVIOUS_ELEMENT),
	"KEY_AUTOPILOT_ENGAGE_TOGGLE": uint16(kernel.KEY_AUTOPILOT_ENGAGE_TOGGLE),
	"KEY_MARK_WAYPOINT": uint16(kernel.KEY_MARK_WAYPOINT),
	"KEY_SOS": uint16(kernel.KEY_SOS),
	"KEY_NAV_CHART": uint16(kernel.KEY_NAV_CHART),
	"KEY_FISHING_CHART": uint16(kernel.KEY_FISHING_CHART),
	"KEY_SINGLE_RANGE_RADAR": uint16(kernel.KEY_SINGLE_RANGE_RADAR),
	"KEY_DUAL_RANGE_RADAR": uint16(kernel.KEY_DUAL_RANGE_RADAR),
	"KEY_RADAR_OVERLAY": uint16(kernel.KEY_RADAR_OVERLAY),
	"KEY_TRADITIONAL_SONAR": uint16(kernel.KEY_TRADITIONAL_SONAR),
	"KEY_CLEARVU_SONAR": uint16(kernel.KEY_CLEARVU_SONAR),
	"KEY_SIDEVU_SONAR": uint16(kernel.KEY_SIDEVU_SONAR),
	"KEY_NAV_INFO": uint16(kernel.KEY_NAV_INFO),
	"KEY_BRIGHTNESS_MENU": uint16(kernel.KEY_BRIGHTNESS_MENU),
	"KEY_MACRO1": uint16(kernel.KEY_MACRO1),
	"KEY_MACRO2": uint16(kernel.KEY_MACRO2),
	"KEY_MACRO3": uint16(kernel.KEY_MACRO3),
	"KEY_MACRO4": uint16(kernel.KEY_MACRO4),
	"KEY_MACRO5": uint16(kernel.KEY_MACRO5),
	"KEY_MACRO6": uint16(kernel.KEY_MACRO6),
	"KEY_MACRO7": uint16(kernel.KEY_MACRO7),
	"KEY_MACRO8": uint16(kernel.KEY_MACRO8),
	"KEY_MACRO9": uint16(kernel.KEY_MACRO9),
	"KEY_MACRO10": uint16(kernel.KEY_MACRO10),
	"KEY_MACRO11": uint16(kernel.KEY_MACRO11),
	"KEY_MACRO12": uint16(kernel.KEY_MACRO12),
	"KEY_MACRO13": uint16(kernel.KEY_MACRO13),
	"KEY_MACRO14": uint16(kernel.KEY_MACRO14),
	"KEY_MACRO15": uint16(kernel.KEY_MACRO15),
	"KEY_MACRO16": uint16(kernel.KEY_MACRO16),
	"KEY_MACRO17": uint16(kernel.KEY_MACRO17),
	"KEY_MACRO18": uint16(kernel.KEY_MACRO18),
	"KEY_MACRO19": uint16(kernel.KEY_MACRO19),
	"KEY_MACRO20": uint16(kernel.KEY_MACRO20),
	"KEY_MACRO21": uint16(kernel.KEY_MACRO21),
	"KEY_MACRO22": uint16(kernel.KEY_MACRO22),
	"KEY_MACRO23": uint16(kernel.KEY_MACRO23),
	"KEY_MACRO24": uint16(kernel.KEY_MACRO24),
	"KEY_MACRO25": uint16(kernel.KEY_MACRO25),
	"KEY_MACRO26": uint16(kernel.KEY_MACRO26),
	"KEY_MACRO27": uint16(kernel.KEY_MACRO27),
	"KEY_MACRO28": uint16(kernel.KEY_MACRO28),
	"KEY_MACRO29": uint16(kernel.KEY_MACRO29),
	"KEY_MACRO30": uint16(kernel.KEY_MACRO30),
	"KEY_MACRO_RECORD_START": uint16(kernel.KEY_MACRO_RECORD_START),
	"KEY_MACRO_RECORD_STOP": uint16(kernel.KEY_MACRO_RECORD_STOP),
	"KEY_MACRO_PRESET_CYCLE": uint16(kernel.KEY_MACRO_PRESET_CYCLE),
	"KEY_MACRO_PRESET1": uint16(kernel.KEY_MACRO_PRESET1),
	"KEY_MACRO_PRESET2": uint16(kernel.KEY_MACRO_PRESET2),
	"KEY_MACRO_PRESET3": uint16(kernel.KEY_MACRO_PRESET3),
	"KEY_KBD_LCD_MENU1": uint16(kernel.KEY_KBD_LCD_MENU1),
	"KEY_KBD_LCD_MENU2": uint16(kernel.KEY_KBD_LCD_MENU2),
	"KEY_KBD_LCD_MENU3": uint16(kernel.KEY_KBD_LCD_MENU3),
	"KEY_KBD_LCD_MENU4": uint16(kernel.KEY_KBD_LCD_MENU4),
	"KEY_KBD_LCD_MENU5": uint16(kernel.KEY_KBD_LCD_MENU5),
	"BTN_MISC": uint16(kernel.BTN_MISC),
	"BTN_0": uint16(kernel.BTN_0),
	"BTN_1": uint16(kernel.BTN_1),
	"BTN_2": uint16(kernel.BTN_2),
	"BTN_3": uint16(kernel.BTN_3),
	"BTN_4": uint16(kernel.BTN_4),
	"BTN_5": uint16(kernel.BTN_5),
	"BTN_6": uint16(kernel.BTN_6),
	"BTN_7": uint16(kernel.BTN_7),
	"BTN_8": uint16(kernel.BTN_8),
	"BTN_9": uint16(kernel.BTN_9),
	"BTN_MOUSE": uint16(kernel.BTN_MOUSE),
	"BTN_LEFT": uint16(kernel.BTN_LEFT),
	"BTN_RIGHT": uint16(kernel.BTN_RIGHT),
	"BTN_MIDDLE": uint16(kernel.BTN_MIDDLE),
	"BTN_SIDE": uint16(kernel.BTN_SIDE),
	"BTN_EXTRA": uint16(kernel.BTN_EXTRA),
	"BTN_FORWARD": uint16(kernel.BTN_FORWARD),
	"BTN_BACK": uint16(kernel.BTN_BACK),
	"BTN_TASK": uint16(kernel.BTN_TASK),
	"BTN_JOYSTICK": uint16(kernel.BTN_JOYSTICK),
	"BTN_TRIGGER": uint16(kernel.BTN_TRIGGER),
	"BTN_THUMB": uint16(kernel.BTN_THUMB),
	"BTN_THUMB2": uint16(kernel.BTN_THUMB2),
	"BTN_TOP": uint16(kernel.BTN_TOP),
	"BTN_TOP2": uint16(kernel.BTN_TOP2),
	"BTN_PINKIE": uint16(kernel.BTN_PINKIE),
	"BTN_BASE": uint16(kernel.BTN_BASE),
	"BTN_BASE2": uint16(kernel.BTN_BASE2),
	"BTN_BASE3": uint16(kernel.BTN_BASE3),
	"BTN_BASE4": uint16(kernel.BTN_BASE4),
	"BTN_BASE5": uint16(kernel.BTN_BASE5),
	"BTN_BASE6": uint16(kernel.BTN_BASE6),
	"BTN_DEAD": uint16(kernel.BTN_DEAD),
	"BTN_GAMEPAD": uint16(kernel.BTN_GAMEPAD),
	"BTN_SOUTH": uint16(kernel.BTN_SOUTH),
	"BTN_A": uint16(kernel.BTN_A),
	"BTN_EAST": uint16(kernel.BTN_EAST),
	"BTN_B": uint16(kernel.BTN_B),
	"BTN_C": uint16(kernel.BTN_C),
	"BTN_NORTH": uint16(kernel.BTN_NORTH),
	"BTN_X": uint16(kernel.BTN_X),
	"BTN_WEST": uint16(kernel.BTN_WEST),
	"BTN_Y": uint16(kernel.BTN_Y),
	"BTN_Z": uint16(kernel.BTN_Z),
	"BTN_TL": uint16(kernel.BTN_TL),
	"BTN_TR": uint16(kernel.BTN_TR),
	"BTN_TL2": uint16(kernel.BTN_TL2),
	"BTN_TR2": uint16(kernel.BTN_TR2),
	"BTN_SELECT": uint16(kernel.BTN_SELECT),
	"BTN_START": uint16(kernel.BTN_START),
	"BTN_MODE": uint16(kernel.BTN_MODE),
	"BTN_THUMBL": uint16(kernel.BTN_THUMBL),
	"BTN_THUMBR": uint16(kernel.BTN_THUMBR),
	"BTN_DIGI": uint16(kernel.BTN_DIGI),
	"BTN_TOOL_PEN": uint16(kernel.BTN_TOOL_PEN),
	"BTN_TOOL_RUBBER": uint16(kernel.BTN_TOOL_RUBBER),
	"BTN_TOOL_BRUSH": uint16(kernel.BTN_TOOL_BRUSH),
	"BTN_TOOL_PENCIL": uint16(kernel.BTN_TOOL_PENCIL),
	"BTN_TOOL_AIRBRUSH": uint16(kernel.BTN_TOOL_AIRBRUSH),
	"BTN_TOOL_FINGER": uint16(kernel.BTN_TOOL_FINGER),
	"BTN_TOOL_MOUSE": uint16(kernel.BTN_TOOL_MOUSE),
	"BTN_TOOL_LENS": uint16(kernel.BTN_TOOL_LENS),
	"BTN_TOOL_QUINTTAP": uint16(kernel.BTN_TOOL_QUINTTAP),
	"BTN_STYLUS3": uint16(kernel.BTN_STYLUS3),
	"BTN_TOUCH": uint16(kernel.BTN_TOUCH),
	"BTN_STYLUS": uint16(kernel.BTN_STYLUS),
	"BTN_STYLUS2": uint16(kernel.BTN_STYLUS2),
	"BTN_TOOL_DOUBLETAP": uint16(kernel.BTN_TOOL_DOUBLETAP),
	"BTN_TOOL_TRIPLETAP": uint16(kernel.BTN_TOOL_TRIPLETAP),
	"BTN_TOOL_QUADTAP": uint16(kernel.BTN_TOOL_QUADTAP),
	"BTN_WHEEL": uint16(kernel.BTN_WHEEL),
	"BTN_GEAR_DOWN": uint16(kernel.BTN_GEAR_DOWN),
	"BTN_GEAR_UP": uint16(kernel.BTN_GEAR_UP),
	"BTN_DPAD_UP": uint16(kernel.BTN_DPAD_UP),
	"BTN_DPAD_DOWN": uint16(kernel.BTN_DPAD_DOWN),
	"BTN_DPAD_LEFT": uint16(kernel.BTN_DPAD_LEFT),
	"BTN_DPAD_RIGHT": uint16(kernel.BTN_DPAD_RIGHT),
	"BTN_TRIGGER_HAPPY": uint16(kernel.BTN_TRIGGER_HAPPY),
	"BTN_TRIGGER_HAPPY1": uint16(kernel.BTN_TRIGGER_HAPPY1),
	"BTN_TRIGGER_HAPPY2": uint16(kernel.BTN_TRIGGER_HAPPY2),
	"BTN_TRIGGER_HAPPY3": uint16(kernel.BTN_TRIGGER_HAPPY3),
	"BTN_TRIGGER_HAPPY4": uint16(kernel.BTN_TRIGGER_HAPPY4),
	"BTN_TRIGGER_HAPPY5": uint16(kernel.BTN_TRIGGER_HAPPY5),
	"BTN_TRIGGER_HAPPY6": uint16(kernel.BTN_TRIGGER_HAPPY6),
	"BTN_TRIGGER_HAPPY7": uint16(kernel.BTN_TRIGGER_HAPPY7),
	"BTN_TRIGGER_HAPPY8": uint16(kernel.BTN_TRIGGER_HAPPY8),
	"BTN_TRIGGER_HAPPY9": uint16(kernel.BTN_TRIGGER_HAPPY9),
	"BTN_TRIGGER_HAPPY10": uint16(kernel.BTN_TRIGGER_HAPPY10),
	"BTN_TRIGGER_HAPPY11": uint16(kernel.BTN_TRIGGER_HAPPY11),
	"BTN_TRIGGER_HAPPY12": uint16(kernel.BTN_TRIGGER_HAPPY12),
	"BTN_TRIGGER_HAPPY13": uint16(kernel.BTN_TRIGGER_HAPPY13),
	"BTN_TRIGGER_HAPPY14": uint16(kernel.BTN_TRIGGER_HAPPY14),
	"BTN_TRIGGER_HAPPY15": uint16(kernel.BTN_TRIGGER_HAPPY15),
	"BTN_TRIGGER_HAPPY16": uint16(kernel.BTN_TRIGGER_HAPPY16),
	"BTN_TRIGGER_HAPPY17": uint16(kernel.BTN_TRIGGER_HAPPY17),
	"BTN_TRIGGER_HAPPY18": uint16(kernel.BTN_TRIGGER_HAPPY18),
	"BTN_TRIGGER_HAPPY19": uint16(kernel.BTN_TRIGGER_HAPPY19),
	"BTN_TRIGGER_HAPPY20": uint16(kernel.BTN_TRIGGER_HAPPY20),
	"BTN_TRIGGER_HAPPY21": uint16(kernel.BTN_TRIGGER_HAPPY21),
	"BTN_TRIGGER_HAPPY22": uint16(kernel.BTN_TRIGGER_HAPPY22),
	"BTN_TRIGGER_HAPPY23": uint16(kernel.BTN_TRIGGER_HAPPY23),
	"BTN_TRIGGER_HAPPY24": uint16(kernel.BTN_TRIGGER_HAPPY24),
	"BTN_TRIGGER_HAPPY25": uint16(kernel.BTN_TRIGGER_HAPPY25),
	"BTN_TRIGGER_HAPPY26": uint16(kernel.BTN_TRIGGER_HAPPY26),
	"BTN_TRIGGER_HAPPY27": uint16(kernel.BTN_TRIGGER_HAPPY27),
	"BTN_TRIGGER_HAPPY28": uint16(kernel.BTN_TRIGGER_HAPPY28),
	"BTN_TRIGGER_HAPPY29": uint16(kernel.BTN_TRIGGER_HAPPY29),
	"BTN_TRIGGER_HAPPY30": uint16(kernel.BTN_TRIGGER_HAPPY30),
	"BTN_TRIGGER_HAPPY31": uint16(kernel.BTN_TRIGGER_HAPPY31),
	"BTN_TRIGGER_HAPPY32": uint16(kernel.BTN_TRIGGER_HAPPY32),
	"BTN_TRIGGER_HAPPY33": uint16(kernel.BTN_TRIGGER_HAPPY33),
	"BTN_TRIGGER_HAPPY34": uint16(kernel.BTN_TRIGGER_HAPPY34),
	"BTN_TRIGGER_HAPPY35": uint16(kernel.BTN_TRIGGER_HAPPY35),
	"BTN_TRIGGER_HAPPY36": uint16(kernel.BTN_TRIGGER_HAPPY36),
	"BTN_TRIGGER_HAPPY37": uint16(kernel.BTN_TRIGGER_HAPPY37),
	"BTN_TRIGGER_HAPPY38": uint16(kernel.BTN_TRIGGER_HAPPY38),
	"BTN_TRIGGER_HAPPY39": uint16(kernel.BTN_TRIGGER_HAPPY39),
	"BTN_TRIGGER_HAPPY40": uint16(kernel.BTN_TRIGGER_HAPPY40),
	"REL_X": uint16(kernel.REL_X),
	"REL_Y": uint16(kernel.REL_Y),
	"REL_Z": uint16(kernel.REL_Z),
	"REL_RX": uint16(kernel.REL_RX),
	"REL_RY": uint16(kernel.REL_RY),
	"REL_RZ": uint16(kernel.REL_RZ),
	"REL_HWHEEL": uint16(kernel.REL_HWHEEL),
	"REL_DIAL": uint16(kernel.REL_DIAL),
	"REL_WHEEL": uint16(kernel.REL_WHEEL),
	"REL_MISC": uint16(kernel.REL_MISC),
	"REL_WHEEL_HI_RES": uint16(kernel.REL_WHEEL_HI_RES),
	"REL_HWHEEL_HI_RES": uint16(kernel.REL_HWHEEL_HI_RES),
}

// byCode is the inverse of byName, built once at init from it. Where
// several names share a numeric code, whether kernel header aliases (e.g.
// KEY_WIMAX and KEY_WWAN) or REL_* axes that reuse low KEY_* values (e.g.
// REL_WHEEL and KEY_7 are both 8), the first name inserted by Go's
// unordered map iteration wins; ResolveName is a debugging aid, not a
// canonical-name authority, so this is acceptable.
var byCode = func() map[uint16]string {
	m := make(map[uint16]string, len(byName))
	for name, code := range byName {
		if _, exists := m[code]; !exists {
			m[code] = name
		}
	}
	return m
}()

// Resolve looks up the numeric code for a symbolic keycode name as used by
// the layout DSL (k("A"), k("ENTER"), k("BTN_LEFT")). The EV_KEY-family
// names may be given with or without their "KEY_" prefix; BTN_* and REL_*
// names must be given in full.
func Resolve(name string) (uint16, bool) {
	if code, ok := byName[name]; ok {
		return code, true
	}

	if code, ok := byName["KEY_"+name]; ok {
		return code, true
	}

	return 0, false
}

// ResolveName returns the canonical symbolic name for a numeric code, for
// use by internal/dump when rendering a compiled layout. It returns false
// for codes outside the known table (vendor-specific or reserved codes).
func ResolveName(code uint16) (string, bool) {
	name, ok := byCode[code]
	return name, ok
}
