package renderer

import (
	"DeskScene/internal/logger"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// =============================================================
//
//	Shaders
//
// =============================================================

// Shader is a linked OpenGL program. Uniform writes go through a location
// cache, so a Shader satisfies UniformSetter once compiled.
type Shader struct {
	*UniformCache
	vertexSource   string
	fragmentSource string
	program        uint32
}

var _ UniformSetter = (*Shader)(nil)

func InitShader() *Shader {
	return &Shader{
		vertexSource:   vertexShaderSource,
		fragmentSource: fragmentShaderSource,
	}
}

// Compile builds and links the program. It needs a current GL context.
func (shader *Shader) Compile() error {
	vertexShader, err := GenShader(shader.vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return err
	}
	fragmentShader, err := GenShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return err
	}
	program, err := GenShaderProgram(vertexShader, fragmentShader)
	if err != nil {
		return err
	}
	shader.program = program
	shader.UniformCache = NewUniformCache(program)
	return nil
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) Program() uint32 {
	return shader.program
}

func (shader *Shader) Delete() {
	if shader.program != 0 {
		gl.DeleteProgram(shader.program)
		shader.program = 0
		shader.UniformCache = nil
	}
}

func GenShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		logger.Log.Error("Failed to compile", zap.String("shader type", shaderTypeName(shaderType)), zap.String("log", log))
		return 0, fmt.Errorf("compile %s shader: %s", shaderTypeName(shaderType), strings.TrimRight(log, "\x00"))
	}
	logger.Log.Debug("Shader compiled", zap.String("shader type", shaderTypeName(shaderType)))
	return shader, nil
}

func GenShaderProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		logger.Log.Error("Failed to link program", zap.String("log", log))
		return 0, fmt.Errorf("link shader program: %s", strings.TrimRight(log, "\x00"))
	}
	logger.Log.Debug("Shader program linked", zap.Uint32("program", program))
	return program, nil
}

func shaderTypeName(shaderType uint32) string {
	if shaderType == gl.FRAGMENT_SHADER {
		return "fragment"
	}
	return "vertex"
}

var vertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec2 inTexCoord;
layout(location = 2) in vec3 inNormal;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec2 fragTexCoord;
out vec3 Normal;
out vec3 FragPos;

void main() {
    FragPos = vec3(model * vec4(inPosition, 1.0));
    // Non-uniform scales are common in the draw list
    Normal = mat3(transpose(inverse(model))) * inNormal;
    fragTexCoord = inTexCoord;

    gl_Position = projection * view * vec4(FragPos, 1.0);
}
` + "\x00"

var fragmentShaderSource = `#version 330 core
#define NUM_POINT_LIGHTS 4

in vec2 fragTexCoord;
in vec3 Normal;
in vec3 FragPos;

struct Material {
    vec3 ambientColor;
    float ambientStrength;
    vec3 diffuseColor;
    vec3 specularColor;
    float shininess;
};

struct PointLight {
    vec3 position;
    vec3 color;
    float intensity;
    bool enabled;
};

struct DirLight {
    bool enabled;
};

struct Flashlight {
    bool enabled;
    vec3 position;
    vec3 direction;
};

uniform PointLight pointLights[NUM_POINT_LIGHTS];
uniform DirLight dirLight;
uniform Flashlight flashlight;
uniform float ambientBoost;
uniform int selectedLight;

uniform Material material;
uniform vec3 viewPosition;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec2 UVscale;

out vec4 FragColor;

const vec3 dirLightDirection = vec3(-0.3, -1.0, -0.4);
const vec3 dirLightColor = vec3(0.5, 0.5, 0.45);
const float flashlightCutOff = 0.976;      // cos(12.5 deg)
const float flashlightOuterCutOff = 0.953; // cos(17.5 deg)

vec3 phong(vec3 lightDir, vec3 color, vec3 norm, vec3 viewDir) {
    float diff = max(dot(norm, lightDir), 0.0);
    vec3 diffuse = diff * color * material.diffuseColor;

    vec3 reflectDir = reflect(-lightDir, norm);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), max(material.shininess, 1.0));
    vec3 specular = spec * color * material.specularColor;
    return diffuse + specular;
}

void main() {
    vec4 baseColor = objectColor;
    if (bUseTexture) {
        baseColor = texture(objectTexture, fragTexCoord * UVscale);
    }
    if (!bUseLighting) {
        FragColor = baseColor;
        return;
    }

    vec3 norm = normalize(Normal);
    vec3 viewDir = normalize(viewPosition - FragPos);
    vec3 result = (material.ambientStrength + ambientBoost) * material.ambientColor;

    if (dirLight.enabled) {
        result += phong(normalize(-dirLightDirection), dirLightColor, norm, viewDir);
    }

    for (int i = 0; i < NUM_POINT_LIGHTS; i++) {
        if (!pointLights[i].enabled) {
            continue;
        }
        vec3 toLight = pointLights[i].position - FragPos;
        float distance = length(toLight);
        float attenuation = 1.0 / (1.0 + 0.09 * distance + 0.032 * distance * distance);
        result += phong(normalize(toLight), pointLights[i].color, norm, viewDir) * pointLights[i].intensity * attenuation;
    }

    if (flashlight.enabled) {
        vec3 lightDir = normalize(flashlight.position - FragPos);
        float theta = dot(lightDir, normalize(-flashlight.direction));
        float epsilon = flashlightCutOff - flashlightOuterCutOff;
        float spot = clamp((theta - flashlightOuterCutOff) / epsilon, 0.0, 1.0);
        result += phong(lightDir, vec3(1.0), norm, viewDir) * spot;
    }

    FragColor = vec4(result * baseColor.rgb, baseColor.a);
}
` + "\x00"
