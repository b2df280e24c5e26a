package config

const (
	defaultCameraIndex     = 0
	defaultFrameWidth      = 640
	defaultFrameHeight     = 480
	defaultCameraFPS       = 30
	defaultMotionThreshold = 1.0 // percent of pixels changed

	defaultMinDetectionConfidence = 0.5
	defaultMinTrackingConfidence  = 0.5
	defaultMinJointVisibility     = 0.5

	defaultFontScale     = 1.0
	defaultFontThickness = 2

	defaultSpeechRate   = 150 // words per minute
	defaultSpeechVolume = 0.9

	defaultServerBind = "127.0.0.1:8807"
	defaultDataDir    = "~/.ailand"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Camera: Camera{
			Index:           defaultCameraIndex,
			Width:           defaultFrameWidth,
			Height:          defaultFrameHeight,
			FPS:             defaultCameraFPS,
			MotionThreshold: defaultMotionThreshold,
		},
		Pose: Pose{
			MinDetectionConfidence: defaultMinDetectionConfidence,
			MinTrackingConfidence:  defaultMinTrackingConfidence,
			MinJointVisibility:     defaultMinJointVisibility,
		},
		UI: UI{
			Fullscreen:    true,
			FontScale:     defaultFontScale,
			FontThickness: defaultFontThickness,
		},
		Speech: Speech{
			Enabled: true,
			Rate:    defaultSpeechRate,
			Volume:  defaultSpeechVolume,
		},
		Server: Server{
			Enabled: false,
			Bind:    defaultServerBind,
		},
		Storage: Storage{
			DataDir: defaultDataDir,
		},
		Thresholds: Thresholds{
			ShoulderPress: PressThresholds{
				StartMin: 80,
				StartMax: 100,
				Up:       160,
				Down:     90,
			},
			BicepCurl: CurlThresholds{
				Start: 160,
				Up:    60,
				Down:  160,
			},
			TricepKickback: CurlThresholds{
				Start: 30,
				Up:    150,
				Down:  30,
			},
		},
	}
}
