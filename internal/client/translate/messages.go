package translate

// MessageKey identifies an entry in the message catalog.
type MessageKey string

const (
	MsgSignInInvalidCredentials MessageKey = "signin.invalid_credentials"
	MsgSignInRateLimited        MessageKey = "signin.rate_limited"
	MsgSignInUnknown            MessageKey = "signin.unknown"
	MsgSignUpAlreadyRegistered  MessageKey = "signup.already_registered"
	MsgSignUpWeakSecret         MessageKey = "signup.weak_secret"
	MsgSignUpNotAllowed         MessageKey = "signup.not_allowed"
	MsgSignUpUnknown            MessageKey = "signup.unknown"
	MsgResetNotRegistered       MessageKey = "reset.not_registered"
	MsgResetRateLimited         MessageKey = "reset.rate_limited"
	MsgResetUnknown             MessageKey = "reset.unknown"
	MsgInvalidEmail             MessageKey = "invalid_email"
	MsgAccountDisabled          MessageKey = "account_disabled"
	MsgNetworkUnavailable       MessageKey = "network_unavailable"

	// Notices and labels.
	MsgResetSent    MessageKey = "reset.sent"
	MsgSignInBusy   MessageKey = "signin.busy"
	MsgSignUpBusy   MessageKey = "signup.busy"
	MsgResetBusy    MessageKey = "reset.busy"
	MsgSignInTitle  MessageKey = "signin.title"
	MsgSignUpTitle  MessageKey = "signup.title"
	MsgResetTitle   MessageKey = "reset.title"
	MsgResetHint    MessageKey = "reset.hint"
	MsgSignedIn     MessageKey = "session.signed_in"
	MsgSignedOut    MessageKey = "session.signed_out"
	MsgBackToSignIn MessageKey = "nav.back_to_signin"
)

var catalogJa = map[MessageKey]string{
	MsgSignInInvalidCredentials: "認証に失敗しました。メールアドレスとパスワードをご確認ください。",
	MsgSignInRateLimited:        "ログイン試行回数が上限を超えました。しばらく時間をおいてから再試行してください。",
	MsgSignInUnknown:            "ログインに失敗しました。しばらく時間をおいてから再試行してください。",
	MsgSignUpAlreadyRegistered:  "このメールアドレスは既に使用されています。",
	MsgSignUpWeakSecret:         "パスワードが弱すぎます。より強力なパスワードを設定してください。",
	MsgSignUpNotAllowed:         "この操作は許可されていません。",
	MsgSignUpUnknown:            "アカウント作成に失敗しました。しばらく時間をおいてから再試行してください。",
	MsgResetNotRegistered:       "このメールアドレスは登録されていません。",
	MsgResetRateLimited:         "リクエストが多すぎます。しばらく時間をおいてから再試行してください。",
	MsgResetUnknown:             "パスワードリセットメールの送信に失敗しました。しばらく時間をおいてから再試行してください。",
	MsgInvalidEmail:             "メールアドレスの形式が正しくありません。",
	MsgAccountDisabled:          "このアカウントは無効化されています。",
	MsgNetworkUnavailable:       "ネットワークエラーが発生しました。インターネット接続をご確認ください。",

	MsgResetSent:    "パスワードリセットメールを送信しました。メールをご確認ください。",
	MsgSignInBusy:   "ログイン中...",
	MsgSignUpBusy:   "アカウント作成中...",
	MsgResetBusy:    "メール送信中...",
	MsgSignInTitle:  "おかえりなさい！",
	MsgSignUpTitle:  "新しいアカウントを作成",
	MsgResetTitle:   "パスワードリセット",
	MsgResetHint:    "登録済みのメールアドレスを入力してください。パスワードリセット用のメールをお送りします。",
	MsgSignedIn:     "ログインしました",
	MsgSignedOut:    "ログアウトしました",
	MsgBackToSignIn: "ログイン画面に戻る",
}

var catalogEn = map[MessageKey]string{
	MsgSignInInvalidCredentials: "Authentication failed. Please check your email address and password.",
	MsgSignInRateLimited:        "Too many sign-in attempts. Please wait a while and try again.",
	MsgSignInUnknown:            "Sign-in failed. Please wait a while and try again.",
	MsgSignUpAlreadyRegistered:  "This email address is already in use.",
	MsgSignUpWeakSecret:         "The password is too weak. Please choose a stronger password.",
	MsgSignUpNotAllowed:         "This operation is not allowed.",
	MsgSignUpUnknown:            "Account creation failed. Please wait a while and try again.",
	MsgResetNotRegistered:       "This email address is not registered.",
	MsgResetRateLimited:         "Too many requests. Please wait a while and try again.",
	MsgResetUnknown:             "Failed to send the password reset email. Please wait a while and try again.",
	MsgInvalidEmail:             "The email address is badly formatted.",
	MsgAccountDisabled:          "This account has been disabled.",
	MsgNetworkUnavailable:       "A network error occurred. Please check your internet connection.",

	MsgResetSent:    "Password reset email sent. Please check your inbox.",
	MsgSignInBusy:   "Signing in...",
	MsgSignUpBusy:   "Creating account...",
	MsgResetBusy:    "Sending email...",
	MsgSignInTitle:  "Welcome back!",
	MsgSignUpTitle:  "Create a new account",
	MsgResetTitle:   "Reset password",
	MsgResetHint:    "Enter your registered email address and we will send you a password reset link.",
	MsgSignedIn:     "Signed in",
	MsgSignedOut:    "Signed out",
	MsgBackToSignIn: "Back to sign in",
}
